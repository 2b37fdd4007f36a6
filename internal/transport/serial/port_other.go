//go:build !linux && !darwin
// +build !linux,!darwin

package serial

import (
	"github.com/midiwire/midiwire/sdk/contracts"
)

// Open reports the platform gap; the serial transport needs termios.
func Open(opts *contracts.ClientOptions) (contracts.Port, error) {
	opts.Logger.Warn("Serial transport requested on an unsupported platform")
	return nil, ErrUnsupportedPlatform
}

// ListPorts reports the platform gap.
func ListPorts() ([]contracts.PortInfo, error) {
	return nil, ErrUnsupportedPlatform
}
