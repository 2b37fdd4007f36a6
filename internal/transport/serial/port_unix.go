//go:build linux || darwin
// +build linux darwin

package serial

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"golang.org/x/sys/unix"

	"github.com/midiwire/midiwire/sdk/contracts"
)

// Port is an open serial device in raw mode. Read blocks until at least
// one byte arrives; Close releases a blocked Read. The descriptor stays
// non-blocking so reads park in the runtime poller rather than in the
// tty driver, which is what lets Close interrupt them.
type Port struct {
	f     *os.File
	saved unix.Termios
	log   contracts.Logger
}

// Open opens the device named in opts and configures it for a raw MIDI
// byte stream: 8N1, no flow control, no line discipline, at the requested
// line rate.
func Open(opts *contracts.ClientOptions) (contracts.Port, error) {
	if opts.Device == "" {
		return nil, ErrNoDevice
	}

	// O_NONBLOCK also keeps the open itself from waiting on a modem
	// carrier that MIDI hardware never asserts.
	f, err := os.OpenFile(opts.Device, os.O_RDWR|unix.O_NOCTTY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", opts.Device, err)
	}

	saved, err := configure(int(f.Fd()), opts.BaudRate)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("configuring %s: %w", opts.Device, err)
	}

	opts.Logger.Info("Serial port opened",
		opts.Logger.Field().String("device", opts.Device),
		opts.Logger.Field().Int("baud", opts.BaudRate))

	return &Port{f: f, saved: *saved, log: opts.Logger}, nil
}

func (p *Port) Read(b []byte) (int, error) {
	return p.f.Read(b)
}

func (p *Port) Write(b []byte) (int, error) {
	return p.f.Write(b)
}

// Close restores the terminal settings saved at open time, then closes the
// device.
func (p *Port) Close() error {
	p.log.Info("Closing serial port", p.log.Field().String("device", p.f.Name()))
	err := restore(int(p.f.Fd()), &p.saved)
	return multierr.Append(err, p.f.Close())
}

// ListPorts enumerates serial devices present on the system that could
// carry a MIDI stream.
func ListPorts() ([]contracts.PortInfo, error) {
	var ports []contracts.PortInfo
	for _, pattern := range portGlobs {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, dev := range matches {
			ports = append(ports, contracts.PortInfo{
				Name:   filepath.Base(dev),
				Device: dev,
			})
		}
	}
	return ports, nil
}
