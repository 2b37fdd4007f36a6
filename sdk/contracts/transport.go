package contracts

import "io"

// Port is an ordered byte transport carrying a raw MIDI stream. Reads block
// until at least one byte is available. Implementations that cannot send
// (receive-only taps) return an error from Write.
type Port interface {
	io.ReadWriteCloser
}

// PortInfo describes a port a transport can open.
type PortInfo struct {
	Name         string // Human-readable port name.
	Device       string // Device path for serial ports; empty otherwise.
	Manufacturer string // Manufacturer, when the platform reports one.
}
