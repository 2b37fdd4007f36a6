//go:build !windows
// +build !windows

package winmm

import (
	"github.com/midiwire/midiwire/sdk/contracts"
)

// Open always fails; WinMM exists only on Windows.
func Open(opts *contracts.ClientOptions) (contracts.Port, error) {
	opts.Logger.Warn("WinMM transport requested on a non-Windows system")
	return nil, ErrUnsupportedPlatform
}

// ListPorts always fails; WinMM exists only on Windows.
func ListPorts() ([]contracts.PortInfo, error) {
	return nil, ErrUnsupportedPlatform
}
