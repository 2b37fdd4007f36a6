//go:build darwin
// +build darwin

// Package coremidi taps a CoreMIDI source and presents its packets as a
// raw byte stream. Receive-only; message assembly belongs to the codec.
package coremidi

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/youpy/go-coremidi"

	"github.com/midiwire/midiwire/sdk/contracts"
)

// Error definitions for CoreMIDI connection and handling issues.
var (
	ErrNoSources       = errors.New("no MIDI sources found")
	ErrInvalidSource   = errors.New("invalid MIDI source")
	ErrConnect         = errors.New("error connecting to MIDI source")
	ErrCreateInputPort = errors.New("error creating input port")
	ErrReceiveOnly     = errors.New("coremidi transport is receive-only")
)

// portConnection abstracts the connection handle so Close can disconnect
// without naming the library's concrete type.
type portConnection interface {
	Disconnect()
}

// Port taps one CoreMIDI source. CoreMIDI pushes packets from its own
// delivery thread into a bounded buffer; Read drains them in order. Write
// is unsupported, sources only produce.
type Port struct {
	log       contracts.Logger
	client    coremidi.Client
	input     coremidi.InputPort
	conn      portConnection
	packets   chan []byte
	pending   []byte // remainder of a partially consumed packet
	closed    chan struct{}
	closeOnce sync.Once
}

// Open registers a MIDI client and connects to the source selected by
// opts.CoreMIDIConfig.
func Open(opts *contracts.ClientOptions) (contracts.Port, error) {
	client, err := coremidi.NewClient(opts.CoreMIDIConfig.ClientName)
	if err != nil {
		return nil, err
	}

	sources, err := coremidi.AllSources()
	if err != nil {
		return nil, fmt.Errorf("listing MIDI sources: %w", err)
	}
	if len(sources) == 0 {
		opts.Logger.Warn(ErrNoSources.Error())
		return nil, ErrNoSources
	}
	idx := opts.CoreMIDIConfig.Source
	if idx < 0 || idx >= len(sources) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSource, idx)
	}
	source := sources[idx]

	p := &Port{
		log:     opts.Logger,
		client:  client,
		packets: make(chan []byte, 256),
		closed:  make(chan struct{}),
	}

	p.input, err = coremidi.NewInputPort(client, "Input Port", p.handlePacket)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateInputPort, err)
	}

	p.conn, err = p.input.Connect(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}

	opts.Logger.Info("MIDI source connected",
		opts.Logger.Field().Int("source", idx),
		opts.Logger.Field().String("name", source.Name()))
	return p, nil
}

// handlePacket runs on CoreMIDI's delivery thread. When the buffer is full
// the packet is dropped rather than stalling that thread.
func (p *Port) handlePacket(source coremidi.Source, packet coremidi.Packet) {
	if len(packet.Data) == 0 {
		return
	}
	data := make([]byte, len(packet.Data))
	copy(data, packet.Data)
	select {
	case <-p.closed:
	case p.packets <- data:
	default:
		p.log.Warn("Packet buffer full; dropping MIDI packet")
	}
}

// Read hands out buffered packet bytes, blocking until some arrive. A
// packet longer than b carries over into the next call. Buffered packets
// are still delivered after Close; Read returns io.EOF once they run out.
func (p *Port) Read(b []byte) (int, error) {
	if len(p.pending) == 0 {
		select {
		case data := <-p.packets:
			p.pending = data
		default:
			select {
			case data := <-p.packets:
				p.pending = data
			case <-p.closed:
				return 0, io.EOF
			}
		}
	}
	n := copy(b, p.pending)
	p.pending = p.pending[n:]
	return n, nil
}

// Write is unsupported; CoreMIDI sources only produce bytes.
func (p *Port) Write(b []byte) (int, error) {
	return 0, ErrReceiveOnly
}

// Close disconnects from the source and wakes any blocked Read. Safe to
// call more than once.
func (p *Port) Close() error {
	p.closeOnce.Do(func() {
		p.log.Info("Disconnecting MIDI source")
		if p.conn != nil {
			p.conn.Disconnect()
			p.conn = nil
		}
		close(p.closed)
	})
	return nil
}

// ListPorts enumerates the CoreMIDI sources currently published.
func ListPorts() ([]contracts.PortInfo, error) {
	sources, err := coremidi.AllSources()
	if err != nil {
		return nil, fmt.Errorf("listing MIDI sources: %w", err)
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	ports := make([]contracts.PortInfo, len(sources))
	for i, source := range sources {
		entity := source.Entity()
		ports[i] = contracts.PortInfo{
			Name:         source.Name(),
			Manufacturer: entity.Manufacturer(),
		}
	}
	return ports, nil
}
