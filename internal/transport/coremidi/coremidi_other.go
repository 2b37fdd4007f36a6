//go:build !darwin
// +build !darwin

// Package coremidi taps a CoreMIDI source and presents its packets as a
// raw byte stream. Only available on macOS.
package coremidi

import (
	"errors"

	"github.com/midiwire/midiwire/sdk/contracts"
)

// ErrUnsupportedPlatform reports that CoreMIDI is unavailable here.
var ErrUnsupportedPlatform = errors.New("coremidi transport requires macOS")

// Open always fails; CoreMIDI exists only on macOS.
func Open(opts *contracts.ClientOptions) (contracts.Port, error) {
	opts.Logger.Warn("CoreMIDI transport requested on a non-macOS system")
	return nil, ErrUnsupportedPlatform
}

// ListPorts always fails; CoreMIDI exists only on macOS.
func ListPorts() ([]contracts.PortInfo, error) {
	return nil, ErrUnsupportedPlatform
}
