package contracts

// Status byte values, bit-exact per the MIDI 1.0 wire protocol. Channel
// Voice constants are base values; the live channel occupies the low nibble.
const (
	StatusNoteOff              byte = 0x80
	StatusNoteOn               byte = 0x90
	StatusPolyAftertouch       byte = 0xA0
	StatusControlChange        byte = 0xB0
	StatusProgramChange        byte = 0xC0
	StatusChannelAftertouch    byte = 0xD0
	StatusPitchBend            byte = 0xE0
	StatusSysExBegin           byte = 0xF0
	StatusTimeCodeQuarterFrame byte = 0xF1
	StatusSongPositionPointer  byte = 0xF2
	StatusSongSelect           byte = 0xF3
	StatusTuneRequest          byte = 0xF6
	StatusSysExEnd             byte = 0xF7
	StatusTimingClock          byte = 0xF8
	StatusStart                byte = 0xFA
	StatusContinue             byte = 0xFB
	StatusStop                 byte = 0xFC
	StatusActiveSensing        byte = 0xFE
	StatusSystemReset          byte = 0xFF
)

// Masks for pulling a byte apart. Bit 7 separates status bytes from data
// bytes; for Channel Voice statuses the nibbles split kind from channel.
const (
	statusFlag     byte = 0x80
	StatusKindMask byte = 0xF0 // High nibble: Channel Voice message family.
	ChannelMask    byte = 0x0F // Low nibble: channel of a Channel Voice status.
	DataMask       byte = 0x7F // Data bytes carry 7 bits.
)

// statusTable maps each Kind to its base status byte, its data-byte count
// and its display name. It is the single source of truth for message
// shapes; the decoder and encoder consult it and define nothing themselves.
var statusTable = [...]struct {
	status  byte
	dataLen int
	name    string
}{
	KindInvalid:              {0x00, 0, "Invalid"},
	KindNoteOff:              {StatusNoteOff, 2, "NoteOff"},
	KindNoteOn:               {StatusNoteOn, 2, "NoteOn"},
	KindPolyAftertouch:       {StatusPolyAftertouch, 2, "PolyAftertouch"},
	KindControlChange:        {StatusControlChange, 2, "ControlChange"},
	KindProgramChange:        {StatusProgramChange, 1, "ProgramChange"},
	KindChannelAftertouch:    {StatusChannelAftertouch, 1, "ChannelAftertouch"},
	KindPitchBend:            {StatusPitchBend, 2, "PitchBend"},
	KindSysExBegin:           {StatusSysExBegin, 0, "SysExBegin"},
	KindTimeCodeQuarterFrame: {StatusTimeCodeQuarterFrame, 1, "TimeCodeQuarterFrame"},
	KindSongPositionPointer:  {StatusSongPositionPointer, 2, "SongPositionPointer"},
	KindSongSelect:           {StatusSongSelect, 1, "SongSelect"},
	KindTuneRequest:          {StatusTuneRequest, 0, "TuneRequest"},
	KindSysExEnd:             {StatusSysExEnd, 0, "SysExEnd"},
	KindTimingClock:          {StatusTimingClock, 0, "TimingClock"},
	KindStart:                {StatusStart, 0, "Start"},
	KindContinue:             {StatusContinue, 0, "Continue"},
	KindStop:                 {StatusStop, 0, "Stop"},
	KindActiveSensing:        {StatusActiveSensing, 0, "ActiveSensing"},
	KindSystemReset:          {StatusSystemReset, 0, "SystemReset"},
}

// kindByStatus indexes statusTable by status byte for decoding.
var kindByStatus = make(map[byte]Kind, len(statusTable))

func init() {
	for k, info := range statusTable {
		if Kind(k) != KindInvalid {
			kindByStatus[info.status] = Kind(k)
		}
	}
}

// String returns the variant name.
func (k Kind) String() string {
	if int(k) < len(statusTable) {
		return statusTable[k].name
	}
	return "Invalid"
}

// Valid reports whether k names one of the defined message kinds.
func (k Kind) Valid() bool { return k > KindInvalid && int(k) < len(statusTable) }

// BaseStatus returns the status byte for the kind before any channel bits
// are folded in. KindInvalid and out-of-range kinds return 0.
func (k Kind) BaseStatus() byte {
	if !k.Valid() {
		return 0
	}
	return statusTable[k].status
}

// DataLen returns the number of data bytes that follow the kind's status
// byte on the wire.
func (k Kind) DataLen() int {
	if !k.Valid() {
		return 0
	}
	return statusTable[k].dataLen
}

// IsChannelVoice reports whether the kind carries a channel in its status
// byte and participates in running status.
func (k Kind) IsChannelVoice() bool { return k >= KindNoteOff && k <= KindPitchBend }

// IsSystemCommon reports whether the kind is a System Common message.
func (k Kind) IsSystemCommon() bool { return k >= KindTimeCodeQuarterFrame && k <= KindTuneRequest }

// IsRealTime reports whether the kind is a System Real-Time message.
func (k Kind) IsRealTime() bool { return k >= KindTimingClock && k <= KindSystemReset }

// IsStatusByte reports whether b is a status byte (bit 7 set). This single
// bit is what lets a decoder resynchronize on an arbitrary byte stream.
func IsStatusByte(b byte) bool { return b&statusFlag != 0 }

// IsChannelVoiceStatus reports whether b is a Channel Voice status byte
// (0x80-0xEF, any channel).
func IsChannelVoiceStatus(b byte) bool { return b >= 0x80 && b <= 0xEF }

// IsRealTimeStatus reports whether b falls in the System Real-Time range.
// The range covers 0xF8-0xFF including the undefined 0xF9 and 0xFD.
func IsRealTimeStatus(b byte) bool { return b >= 0xF8 }

// IsSystemCommonStatus reports whether b falls in the System Common range
// (0xF1-0xF6). The range covers the undefined 0xF4 and 0xF5; the SysEx
// framing bytes 0xF0 and 0xF7 are not part of it.
func IsSystemCommonStatus(b byte) bool { return b >= 0xF1 && b <= 0xF6 }

// KindForStatus maps a status byte to its message kind. System statuses
// match exactly; Channel Voice statuses fall back to a match on their high
// nibble. Data bytes and reserved statuses (0xF4, 0xF5, 0xF9, 0xFD) return
// KindInvalid.
func KindForStatus(b byte) Kind {
	if k, ok := kindByStatus[b]; ok {
		return k
	}
	if IsChannelVoiceStatus(b) {
		return kindByStatus[b&StatusKindMask]
	}
	return KindInvalid
}
