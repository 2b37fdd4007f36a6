// Package serial is the serial-device byte transport: it opens a UART or
// USB-serial bridge in raw termios mode at the MIDI line rate and moves
// bytes, nothing more. Message assembly belongs to the codec.
package serial

import "errors"

// Error definitions for serial transport issues.
var (
	ErrNoDevice            = errors.New("no serial device specified")
	ErrUnsupportedPlatform = errors.New("serial transport not supported on this platform")
)
