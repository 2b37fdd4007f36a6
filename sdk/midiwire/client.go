// Package midiwire connects MIDI byte transports to the message codec.
package midiwire

import (
	"github.com/midiwire/midiwire/sdk/contracts"
)

// Conn is an open MIDI connection. In decodes the incoming byte stream,
// Out encodes outgoing messages; both share the underlying port.
type Conn struct {
	In  *In
	Out *Out

	port contracts.Port
	log  contracts.Logger
}

// Open connects to a MIDI byte transport with the specified options.
// It applies default options and initializes the selected transport.
//
// opts ...contracts.Option: A variadic list of option functions to customize the connection.
//
// Returns:
//   - *Conn: An open connection wrapping the transport for message I/O.
//   - error: An error, if any occurred while opening the transport.
func Open(opts ...contracts.Option) (*Conn, error) {
	options := applyDefaultOptions(opts...)

	port, err := newPort(&options)
	if err != nil {
		return nil, err
	}

	in := NewIn(port)
	in.SetFilter(options.MessageFilter)

	return &Conn{
		In:   in,
		Out:  NewOut(port),
		port: port,
		log:  options.Logger,
	}, nil
}

// Close releases the underlying port. A blocked read unblocks with an error.
func (c *Conn) Close() error {
	c.log.Info("Closing MIDI connection")
	return c.port.Close()
}
