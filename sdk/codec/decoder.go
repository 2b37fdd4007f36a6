// Package codec implements the MIDI 1.0 byte-stream codec: a Decoder that
// assembles messages from bytes arriving one at a time, honoring running
// status, SysEx framing and interleaved Real-Time bytes, and an Encoder
// that produces the minimal byte sequence for a message using running-status
// compression. Both are pure state machines; they perform no I/O and hold
// no buffers beyond one in-progress message.
package codec

import (
	"github.com/midiwire/midiwire/sdk/contracts"
)

// Decoder turns a raw MIDI byte stream back into messages. It keeps just
// enough state between calls to honor running status and SysEx framing, so
// decoding may begin or resume at any byte boundary; bytes that arrive
// without context are dropped until the stream resynchronizes on a status
// byte.
//
// The zero value is ready to use. A Decoder belongs to a single stream and
// is not safe for concurrent use; independent links each need their own.
type Decoder struct {
	status  byte    // Status of the message being assembled; 0 when idle.
	data    [2]byte // Data bytes collected so far.
	have    int     // Count of collected data bytes.
	running byte    // Last Channel Voice status seen; 0 when none.
	inSysEx bool    // Between SysExBegin and SysExEnd.
}

// Feed consumes one byte from the stream. When the byte completes a message
// the message is returned with ok true; otherwise ok is false. Feed never
// fails: data bytes of partial messages, SysEx payload, reserved statuses
// and desynchronized garbage all return ok false and decoding continues
// with the next byte.
func (d *Decoder) Feed(b byte) (msg contracts.Message, ok bool) {
	if contracts.IsStatusByte(b) {
		return d.feedStatus(b)
	}
	return d.feedData(b)
}

// FeedBytes runs every byte of p through Feed and collects the completed
// messages in arrival order. State carries across calls exactly as with
// Feed, so a message split between two slices still decodes.
func (d *Decoder) FeedBytes(p []byte) []contracts.Message {
	var msgs []contracts.Message
	for _, b := range p {
		if m, ok := d.Feed(b); ok {
			msgs = append(msgs, m)
		}
	}
	return msgs
}

// Reset returns the decoder to its initial state: no running status, no
// partial message, not inside SysEx. Receiving bytes never resets the
// decoder, not even SystemReset (0xFF); callers wanting the stricter
// reading of a reset byte invoke this themselves.
func (d *Decoder) Reset() {
	*d = Decoder{}
}

func (d *Decoder) feedStatus(b byte) (contracts.Message, bool) {
	// Real-Time bytes interleave anywhere, even inside SysEx or between a
	// status byte and its data, and must not disturb any decoder state.
	// The undefined 0xF9 and 0xFD stay in that category: ignored, nothing
	// touched.
	if contracts.IsRealTimeStatus(b) {
		kind := contracts.KindForStatus(b)
		if kind == contracts.KindInvalid {
			return contracts.Message{}, false
		}
		return contracts.Message{Kind: kind}, true
	}

	// Inside SysEx only the terminator is recognized; every other
	// non-Real-Time byte is opaque payload.
	if d.inSysEx {
		if b == contracts.StatusSysExEnd {
			d.inSysEx = false
			return contracts.Message{Kind: contracts.KindSysExEnd}, true
		}
		return contracts.Message{}, false
	}

	switch b {
	case contracts.StatusSysExBegin:
		d.inSysEx = true
		d.status = 0
		d.have = 0
		return contracts.Message{Kind: contracts.KindSysExBegin}, true
	case contracts.StatusSysExEnd:
		// A stray terminator outside SysEx is still reported; framing
		// state only is touched.
		return contracts.Message{Kind: contracts.KindSysExEnd}, true
	}

	kind := contracts.KindForStatus(b)
	if kind == contracts.KindInvalid {
		// Reserved status (0xF4, 0xF5): drop it along with whatever
		// message it interrupted. Running status stays; the stream
		// resynchronizes on the next byte.
		d.status = 0
		d.have = 0
		return contracts.Message{}, false
	}

	if kind.IsChannelVoice() {
		d.running = b
	}
	if kind.DataLen() == 0 {
		// TuneRequest completes on its status byte alone. It still
		// replaces any in-flight message, like every System Common status.
		d.status = 0
		d.have = 0
		return contracts.Message{Kind: kind}, true
	}
	d.status = b
	d.have = 0
	return contracts.Message{}, false
}

func (d *Decoder) feedData(b byte) (contracts.Message, bool) {
	if d.inSysEx {
		return contracts.Message{}, false
	}
	if d.status == 0 {
		if d.running == 0 {
			// Desynchronized: a data byte with no status context, as
			// happens when attaching to a live stream mid-message.
			// Dropped silently; the next status byte re-anchors.
			return contracts.Message{}, false
		}
		// Running status: the byte belongs to a synthesized message that
		// re-uses the last Channel Voice status.
		d.status = d.running
		d.have = 0
	}
	d.data[d.have] = b
	d.have++
	if d.have < contracts.KindForStatus(d.status).DataLen() {
		return contracts.Message{}, false
	}
	return d.finish()
}

// finish assembles the completed message and clears the in-progress slot.
// Running status is kept, so following bare data bytes may re-use it.
func (d *Decoder) finish() (contracts.Message, bool) {
	kind := contracts.KindForStatus(d.status)
	msg := contracts.Message{Kind: kind, Data1: d.data[0]}
	if d.have > 1 {
		msg.Data2 = d.data[1]
	}
	if kind.IsChannelVoice() {
		msg.Channel = d.status & contracts.ChannelMask
	}
	d.status = 0
	d.have = 0
	return msg, true
}
