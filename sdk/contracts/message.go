package contracts

import "fmt"

// Kind identifies a MIDI message variant.
type Kind uint8

const (
	// KindInvalid is the zero value. It never appears in a decoded message;
	// encoding a message with it is an error.
	KindInvalid Kind = iota

	// Channel Voice kinds. These carry a channel in the low nibble of their
	// status byte and participate in running status.
	KindNoteOff
	KindNoteOn
	KindPolyAftertouch
	KindControlChange
	KindProgramChange
	KindChannelAftertouch
	KindPitchBend

	// SysEx framing markers. Payload bytes between them are opaque to this
	// layer and are not modeled.
	KindSysExBegin

	// System Common kinds. Fixed status byte, no channel, no running status.
	KindTimeCodeQuarterFrame
	KindSongPositionPointer
	KindSongSelect
	KindTuneRequest

	KindSysExEnd

	// System Real-Time kinds. Single byte, may interleave inside any other
	// message without disturbing its decoding.
	KindTimingClock
	KindStart
	KindContinue
	KindStop
	KindActiveSensing
	KindSystemReset
)

// Message is a single MIDI message as a flat tagged union: Kind selects the
// variant and decides which of the remaining fields carry meaning. The zero
// value is not a valid message.
type Message struct {
	Kind    Kind  // Message variant.
	Channel uint8 // Channel number (0-15); Channel Voice kinds only.
	Data1   uint8 // First data byte (7-bit); LSB of 14-bit values.
	Data2   uint8 // Second data byte (7-bit); MSB of 14-bit values.
}

// NoteOff builds a Note Off message. The channel is masked to 4 bits, note
// and velocity to 7 bits, as are all constructor arguments in this package.
func NoteOff(channel, note, velocity uint8) Message {
	return Message{KindNoteOff, channel & ChannelMask, note & DataMask, velocity & DataMask}
}

// NoteOn builds a Note On message. A velocity of zero is left as-is; many
// devices treat it as a note release, but that interpretation belongs to the
// application, not the codec.
func NoteOn(channel, note, velocity uint8) Message {
	return Message{KindNoteOn, channel & ChannelMask, note & DataMask, velocity & DataMask}
}

// PolyAftertouch builds a Polyphonic Aftertouch (per-note pressure) message.
func PolyAftertouch(channel, note, pressure uint8) Message {
	return Message{KindPolyAftertouch, channel & ChannelMask, note & DataMask, pressure & DataMask}
}

// ControlChange builds a Control Change message.
func ControlChange(channel, controller, value uint8) Message {
	return Message{KindControlChange, channel & ChannelMask, controller & DataMask, value & DataMask}
}

// ProgramChange builds a Program Change message.
func ProgramChange(channel, program uint8) Message {
	return Message{KindProgramChange, channel & ChannelMask, program & DataMask, 0}
}

// ChannelAftertouch builds a Channel Aftertouch (channel pressure) message.
func ChannelAftertouch(channel, pressure uint8) Message {
	return Message{KindChannelAftertouch, channel & ChannelMask, pressure & DataMask, 0}
}

// PitchBend builds a Pitch Bend message from an absolute 14-bit value
// (0-16383, center 8192). The value is split LSB-first across the two data
// bytes, matching the wire layout.
func PitchBend(channel uint8, value uint16) Message {
	return Message{KindPitchBend, channel & ChannelMask, uint8(value) & DataMask, uint8(value>>7) & DataMask}
}

// TimeCodeQuarterFrame builds an MTC Quarter Frame message. The single data
// byte packs the piece number and its value; this layer does not unpack it.
func TimeCodeQuarterFrame(value uint8) Message {
	return Message{Kind: KindTimeCodeQuarterFrame, Data1: value & DataMask}
}

// SongPositionPointer builds a Song Position Pointer message from a 14-bit
// position in MIDI beats, split LSB-first like PitchBend.
func SongPositionPointer(beats uint16) Message {
	return Message{Kind: KindSongPositionPointer, Data1: uint8(beats) & DataMask, Data2: uint8(beats>>7) & DataMask}
}

// SongSelect builds a Song Select message.
func SongSelect(song uint8) Message {
	return Message{Kind: KindSongSelect, Data1: song & DataMask}
}

// TuneRequest builds a Tune Request message.
func TuneRequest() Message { return Message{Kind: KindTuneRequest} }

// SysExBegin builds the start-of-exclusive framing marker.
func SysExBegin() Message { return Message{Kind: KindSysExBegin} }

// SysExEnd builds the end-of-exclusive framing marker.
func SysExEnd() Message { return Message{Kind: KindSysExEnd} }

// TimingClock builds a Timing Clock message.
func TimingClock() Message { return Message{Kind: KindTimingClock} }

// Start builds a Start message.
func Start() Message { return Message{Kind: KindStart} }

// Continue builds a Continue message.
func Continue() Message { return Message{Kind: KindContinue} }

// Stop builds a Stop message.
func Stop() Message { return Message{Kind: KindStop} }

// ActiveSensing builds an Active Sensing message.
func ActiveSensing() Message { return Message{Kind: KindActiveSensing} }

// SystemReset builds a System Reset message.
func SystemReset() Message { return Message{Kind: KindSystemReset} }

// Note returns the note number for NoteOn, NoteOff and PolyAftertouch.
func (m Message) Note() uint8 { return m.Data1 }

// Velocity returns the velocity for NoteOn and NoteOff.
func (m Message) Velocity() uint8 { return m.Data2 }

// Controller returns the controller number for ControlChange.
func (m Message) Controller() uint8 { return m.Data1 }

// Value returns the controller value for ControlChange.
func (m Message) Value() uint8 { return m.Data2 }

// Program returns the program number for ProgramChange.
func (m Message) Program() uint8 { return m.Data1 }

// Pressure returns the pressure for the aftertouch kinds: per-note pressure
// for PolyAftertouch, channel pressure for ChannelAftertouch.
func (m Message) Pressure() uint8 {
	if m.Kind == KindChannelAftertouch {
		return m.Data1
	}
	return m.Data2
}

// Bend returns the absolute 14-bit pitch bend value (0-16383, center 8192).
func (m Message) Bend() uint16 { return uint16(m.Data2)<<7 | uint16(m.Data1) }

// Position returns the 14-bit song position in MIDI beats.
func (m Message) Position() uint16 { return uint16(m.Data2)<<7 | uint16(m.Data1) }

// Song returns the song number for SongSelect.
func (m Message) Song() uint8 { return m.Data1 }

// String renders the message in a compact human-readable form.
func (m Message) String() string {
	switch m.Kind {
	case KindNoteOff, KindNoteOn:
		return fmt.Sprintf("%s ch=%d note=%d vel=%d", m.Kind, m.Channel, m.Data1, m.Data2)
	case KindPolyAftertouch:
		return fmt.Sprintf("%s ch=%d note=%d pressure=%d", m.Kind, m.Channel, m.Data1, m.Data2)
	case KindControlChange:
		return fmt.Sprintf("%s ch=%d cc=%d val=%d", m.Kind, m.Channel, m.Data1, m.Data2)
	case KindProgramChange:
		return fmt.Sprintf("%s ch=%d program=%d", m.Kind, m.Channel, m.Data1)
	case KindChannelAftertouch:
		return fmt.Sprintf("%s ch=%d pressure=%d", m.Kind, m.Channel, m.Data1)
	case KindPitchBend:
		return fmt.Sprintf("%s ch=%d bend=%d", m.Kind, m.Channel, m.Bend())
	case KindTimeCodeQuarterFrame:
		return fmt.Sprintf("%s value=%d", m.Kind, m.Data1)
	case KindSongPositionPointer:
		return fmt.Sprintf("%s beats=%d", m.Kind, m.Position())
	case KindSongSelect:
		return fmt.Sprintf("%s song=%d", m.Kind, m.Data1)
	default:
		return m.Kind.String()
	}
}
