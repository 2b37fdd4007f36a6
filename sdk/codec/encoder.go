package codec

import (
	"errors"
	"fmt"

	"github.com/midiwire/midiwire/sdk/contracts"
)

// Error definitions for messages that cannot be put on the wire.
var (
	ErrInvalidKind  = errors.New("invalid message kind")
	ErrChannelRange = errors.New("channel out of range")
	ErrDataRange    = errors.New("data byte out of range")
)

// Encoder serializes messages into raw MIDI bytes, compressing repeated
// Channel Voice statuses via running status.
//
// The zero value is ready to use. An Encoder belongs to a single stream
// and is not safe for concurrent use.
type Encoder struct {
	lastStatus byte // Last Channel Voice status written; 0 when none.
}

// Encode serializes m, omitting the status byte when running status makes
// it redundant: a Channel Voice message whose computed status equals the
// last one written travels as data bytes only. Real-Time and System Common
// messages neither consult nor update the running status, so a clock byte
// between two NoteOns does not force the second to re-send its status.
//
// Encode fails only on malformed messages: KindInvalid, a channel above 15
// or a data byte above 127. Messages built with the contracts constructors
// always encode.
func (e *Encoder) Encode(m contracts.Message) ([]byte, error) {
	status, data, err := wire(m)
	if err != nil {
		return nil, err
	}
	if m.Kind.IsChannelVoice() {
		if status == e.lastStatus {
			return data, nil
		}
		e.lastStatus = status
	}
	return append([]byte{status}, data...), nil
}

// Reset forgets the running status so the next Channel Voice message is
// written with an explicit status byte. Use it after reopening a transport:
// the peer's decoder starts without running status and would drop
// compressed messages.
func (e *Encoder) Reset() {
	e.lastStatus = 0
}

// Marshal serializes m as a self-contained message with its status byte
// always present. Packet-oriented consumers (USB-MIDI, CoreMIDI, network
// transports) want this form; byte streams go through an Encoder to get
// running-status compression.
func Marshal(m contracts.Message) ([]byte, error) {
	status, data, err := wire(m)
	if err != nil {
		return nil, err
	}
	return append([]byte{status}, data...), nil
}

// wire validates m and splits it into its status byte and data bytes.
func wire(m contracts.Message) (status byte, data []byte, err error) {
	if !m.Kind.Valid() {
		return 0, nil, fmt.Errorf("%w: %d", ErrInvalidKind, uint8(m.Kind))
	}
	status = m.Kind.BaseStatus()
	if m.Kind.IsChannelVoice() {
		if m.Channel > contracts.ChannelMask {
			return 0, nil, fmt.Errorf("%w: %d", ErrChannelRange, m.Channel)
		}
		status |= m.Channel
	}
	switch m.Kind.DataLen() {
	case 1:
		data = []byte{m.Data1}
	case 2:
		data = []byte{m.Data1, m.Data2}
	}
	for _, b := range data {
		if b > contracts.DataMask {
			return 0, nil, fmt.Errorf("%w: %#02x", ErrDataRange, b)
		}
	}
	return status, data, nil
}
