package codec_test

import (
	"testing"

	"github.com/midiwire/midiwire/sdk/codec"
	"github.com/midiwire/midiwire/sdk/contracts"
)

// Every Channel Voice message on every channel must survive an encode
// followed by a byte-wise decode, including once running status has kicked
// in. Encoder and decoder start in matching (empty) states and stay in
// sync because the decoder sees every byte the encoder emits.
func TestRoundTripChannelVoice(t *testing.T) {
	for ch := uint8(0); ch < 16; ch++ {
		var enc codec.Encoder
		var dec codec.Decoder

		note := 36 + ch
		msgs := []contracts.Message{
			contracts.NoteOn(ch, note, 100),
			contracts.NoteOn(ch, note+7, 90),
			contracts.NoteOff(ch, note, 64),
			contracts.PolyAftertouch(ch, note, 45),
			contracts.ControlChange(ch, 7, 127-ch),
			contracts.ControlChange(ch, 10, ch),
			contracts.ProgramChange(ch, 12+ch),
			contracts.ChannelAftertouch(ch, 80),
			contracts.PitchBend(ch, 8192),
			contracts.PitchBend(ch, uint16(ch)*1000),
		}

		for i, want := range msgs {
			wire, err := enc.Encode(want)
			if err != nil {
				t.Fatalf("ch %d msg %d: Encode(%v): %v", ch, i, want, err)
			}
			got := dec.FeedBytes(wire)
			if len(got) != 1 {
				t.Fatalf("ch %d msg %d: % X decoded to %v, want exactly %v", ch, i, wire, got, want)
			}
			if got[0] != want {
				t.Errorf("ch %d msg %d: round-tripped to %v, want %v", ch, i, got[0], want)
			}
		}
	}
}

// Real-Time and System Common messages round-trip without touching the
// running status on either side, so a compressed Channel Voice message
// following them still decodes.
func TestRoundTripInterleavedSystem(t *testing.T) {
	var enc codec.Encoder
	var dec codec.Decoder

	msgs := []contracts.Message{
		contracts.NoteOn(3, 60, 100),
		contracts.TimingClock(),
		contracts.SongPositionPointer(512),
		contracts.TimeCodeQuarterFrame(0x21),
		contracts.NoteOn(3, 64, 90),
		contracts.ActiveSensing(),
		contracts.SongSelect(2),
		contracts.TuneRequest(),
		contracts.NoteOff(3, 60, 0),
		contracts.SystemReset(),
	}

	var wire []byte
	for _, m := range msgs {
		b, err := enc.Encode(m)
		if err != nil {
			t.Fatalf("Encode(%v): %v", m, err)
		}
		wire = append(wire, b...)
	}

	got := dec.FeedBytes(wire)
	if len(got) != len(msgs) {
		t.Fatalf("decoded %d messages %v, want %d", len(got), got, len(msgs))
	}
	for i := range got {
		if got[i] != msgs[i] {
			t.Errorf("message %d = %v, want %v", i, got[i], msgs[i])
		}
	}
}
