package midiwire

import (
	"errors"
	"fmt"

	"github.com/midiwire/midiwire/internal/transport/coremidi"
	"github.com/midiwire/midiwire/internal/transport/serial"
	"github.com/midiwire/midiwire/internal/transport/winmm"
	"github.com/midiwire/midiwire/sdk/contracts"
)

// ErrUnknownTransport is returned when the requested transport name has no initializer.
var ErrUnknownTransport = errors.New("unknown transport")

// transportInitializers maps transport names to corresponding port initializers.
var transportInitializers = map[string]func(*contracts.ClientOptions) (contracts.Port, error){
	contracts.TransportSerial:   serial.Open,   // Serial DIN or USB-serial byte stream.
	contracts.TransportCoreMIDI: coremidi.Open, // macOS CoreMIDI source tap.
	contracts.TransportWinMM:    winmm.Open,    // Windows multimedia input device tap.
}

// portListers maps transport names to corresponding port enumerators.
var portListers = map[string]func() ([]contracts.PortInfo, error){
	contracts.TransportSerial:   serial.ListPorts,
	contracts.TransportCoreMIDI: coremidi.ListPorts,
	contracts.TransportWinMM:    winmm.ListPorts,
}

// newPort opens a byte-stream port on the transport selected in opts,
// returning ErrUnknownTransport if the name is not registered.
func newPort(opts *contracts.ClientOptions) (contracts.Port, error) {
	if initializer, exists := transportInitializers[opts.Transport]; exists {
		return initializer(opts)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownTransport, opts.Transport)
}

// ListPorts enumerates the ports visible to the named transport without
// opening any of them.
func ListPorts(transport string) ([]contracts.PortInfo, error) {
	if lister, exists := portListers[transport]; exists {
		return lister()
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownTransport, transport)
}
