// Package winmm taps a Windows multimedia MIDI input device and presents
// its messages as a raw byte stream. Receive-only; message assembly
// belongs to the codec.
package winmm

import "errors"

// Error definitions for WinMM device and handling issues.
var (
	ErrNoDevices           = errors.New("no MIDI devices found")
	ErrInvalidDevice       = errors.New("invalid MIDI device")
	ErrReceiveOnly         = errors.New("winmm transport is receive-only")
	ErrUnsupportedPlatform = errors.New("winmm transport requires Windows")
)
