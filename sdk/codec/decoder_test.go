package codec_test

import (
	"testing"

	"github.com/midiwire/midiwire/sdk/codec"
	"github.com/midiwire/midiwire/sdk/contracts"
)

// assertDecodes feeds input through a fresh decoder and compares the
// completed messages against want, in order.
func assertDecodes(t *testing.T, input []byte, want []contracts.Message) {
	t.Helper()
	var d codec.Decoder
	assertFeeds(t, &d, input, want)
}

// assertFeeds is assertDecodes over an existing decoder, for tests that
// need state to carry across feeds.
func assertFeeds(t *testing.T, d *codec.Decoder, input []byte, want []contracts.Message) {
	t.Helper()
	got := d.FeedBytes(input)
	if len(got) != len(want) {
		t.Fatalf("decoded %d messages %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("message %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFeedNoteOn(t *testing.T) {
	assertDecodes(t,
		[]byte{0x91, 0x04, 0x34},
		[]contracts.Message{contracts.NoteOn(1, 0x04, 0x34)})
}

func TestFeedNoteOff(t *testing.T) {
	assertDecodes(t,
		[]byte{0x82, 0x04, 0x34},
		[]contracts.Message{contracts.NoteOff(2, 0x04, 0x34)})
}

func TestFeedPolyAftertouch(t *testing.T) {
	assertDecodes(t,
		[]byte{0xA9, 60, 80},
		[]contracts.Message{contracts.PolyAftertouch(9, 60, 80)})
}

func TestFeedControlChange(t *testing.T) {
	assertDecodes(t,
		[]byte{0xB3, 0x07, 0x64},
		[]contracts.Message{contracts.ControlChange(3, 7, 100)})
}

func TestFeedProgramChange(t *testing.T) {
	assertDecodes(t,
		[]byte{0xC3, 0x07},
		[]contracts.Message{contracts.ProgramChange(3, 7)})
}

func TestFeedChannelAftertouch(t *testing.T) {
	assertDecodes(t,
		[]byte{0xD5, 0x40},
		[]contracts.Message{contracts.ChannelAftertouch(5, 0x40)})
}

func TestFeedPitchBend(t *testing.T) {
	assertDecodes(t,
		[]byte{0xE0, 0x00, 0x40},
		[]contracts.Message{contracts.PitchBend(0, 8192)})
	assertDecodes(t,
		[]byte{0xE7, 0x7F, 0x7F},
		[]contracts.Message{contracts.PitchBend(7, 16383)})
}

func TestRunningStatus(t *testing.T) {
	assertDecodes(t,
		[]byte{0x90, 60, 100, 64, 90},
		[]contracts.Message{
			contracts.NoteOn(0, 60, 100),
			contracts.NoteOn(0, 64, 90),
		})
}

func TestRunningStatusSingleDataByte(t *testing.T) {
	assertDecodes(t,
		[]byte{0xC2, 0x01, 0x02, 0x03},
		[]contracts.Message{
			contracts.ProgramChange(2, 1),
			contracts.ProgramChange(2, 2),
			contracts.ProgramChange(2, 3),
		})
}

func TestNewStatusReplacesRunningStatus(t *testing.T) {
	assertDecodes(t,
		[]byte{0x90, 60, 100, 0x80, 60, 0, 62, 0},
		[]contracts.Message{
			contracts.NoteOn(0, 60, 100),
			contracts.NoteOff(0, 60, 0),
			contracts.NoteOff(0, 62, 0),
		})
}

func TestInterruptedMessageDiscarded(t *testing.T) {
	// The partial NoteOn loses its data byte to the fresh NoteOff status.
	assertDecodes(t,
		[]byte{0x92, 0x1B, 0x82, 0x76, 0x34},
		[]contracts.Message{contracts.NoteOff(2, 0x76, 0x34)})
}

func TestRealTimeInterleavesAfterStatus(t *testing.T) {
	assertDecodes(t,
		[]byte{0x90, 0xF8, 60, 100},
		[]contracts.Message{
			contracts.TimingClock(),
			contracts.NoteOn(0, 60, 100),
		})
}

func TestRealTimeInterleavesBetweenDataBytes(t *testing.T) {
	assertDecodes(t,
		[]byte{0x90, 60, 0xFE, 100},
		[]contracts.Message{
			contracts.ActiveSensing(),
			contracts.NoteOn(0, 60, 100),
		})
}

func TestRealTimeDoesNotDisturbRunningStatus(t *testing.T) {
	assertDecodes(t,
		[]byte{0x90, 60, 100, 0xFA, 64, 90},
		[]contracts.Message{
			contracts.NoteOn(0, 60, 100),
			contracts.Start(),
			contracts.NoteOn(0, 64, 90),
		})
}

func TestRealTimeMessages(t *testing.T) {
	cases := []struct {
		b    byte
		want contracts.Message
	}{
		{0xF8, contracts.TimingClock()},
		{0xFA, contracts.Start()},
		{0xFB, contracts.Continue()},
		{0xFC, contracts.Stop()},
		{0xFE, contracts.ActiveSensing()},
		{0xFF, contracts.SystemReset()},
	}
	for _, tc := range cases {
		assertDecodes(t, []byte{tc.b}, []contracts.Message{tc.want})
	}
}

func TestUndefinedRealTimeIgnored(t *testing.T) {
	// 0xF9 and 0xFD are undefined but sit in the Real-Time range, so they
	// vanish without disturbing the message around them.
	assertDecodes(t,
		[]byte{0x90, 60, 0xF9, 100, 0xFD},
		[]contracts.Message{contracts.NoteOn(0, 60, 100)})
}

func TestSystemResetLeavesStateAlone(t *testing.T) {
	// 0xFF emits immediately; clearing decoder state on it is the
	// caller's call via Reset, never automatic.
	assertDecodes(t,
		[]byte{0x90, 60, 0xFF, 100, 64, 90},
		[]contracts.Message{
			contracts.SystemReset(),
			contracts.NoteOn(0, 60, 100),
			contracts.NoteOn(0, 64, 90),
		})
}

func TestDesyncRecovery(t *testing.T) {
	var d codec.Decoder
	assertFeeds(t, &d, []byte{64}, nil)
	assertFeeds(t, &d,
		[]byte{0x90, 60, 100},
		[]contracts.Message{contracts.NoteOn(0, 60, 100)})
}

func TestSysExFraming(t *testing.T) {
	assertDecodes(t,
		[]byte{0xF0, 0x7E, 0x09, 0x01, 0xF7},
		[]contracts.Message{contracts.SysExBegin(), contracts.SysExEnd()})
}

func TestSysExPayloadOpaque(t *testing.T) {
	// Payload is dropped wholesale, even bytes that look like Channel
	// Voice messages; only the terminator and Real-Time bytes register.
	assertDecodes(t,
		[]byte{0xF0, 0x90, 60, 100, 0xF0, 0xF7},
		[]contracts.Message{contracts.SysExBegin(), contracts.SysExEnd()})
}

func TestSysExRealTimePassThrough(t *testing.T) {
	assertDecodes(t,
		[]byte{0xF0, 0x01, 0xF8, 0x02, 0xF7},
		[]contracts.Message{
			contracts.SysExBegin(),
			contracts.TimingClock(),
			contracts.SysExEnd(),
		})
}

func TestSysExBeginDropsPartialMessage(t *testing.T) {
	// The half-built NoteOn dies with the SysExBegin, but running status
	// survives the frame: the bytes after the terminator decode with the
	// 0x90 still in effect.
	assertDecodes(t,
		[]byte{0x90, 60, 0xF0, 0xF7, 100, 0x40},
		[]contracts.Message{
			contracts.SysExBegin(),
			contracts.SysExEnd(),
			contracts.NoteOn(0, 100, 0x40),
		})
}

func TestStraySysExEndReported(t *testing.T) {
	var d codec.Decoder
	assertFeeds(t, &d, []byte{0xF7}, []contracts.Message{contracts.SysExEnd()})
	assertFeeds(t, &d,
		[]byte{0x90, 60, 100},
		[]contracts.Message{contracts.NoteOn(0, 60, 100)})
}

func TestStraySysExEndKeepsPartialMessage(t *testing.T) {
	// Only framing state reacts to a terminator; the half-built NoteOn
	// still completes afterwards.
	assertDecodes(t,
		[]byte{0x90, 60, 0xF7, 100},
		[]contracts.Message{
			contracts.SysExEnd(),
			contracts.NoteOn(0, 60, 100),
		})
}

func TestReservedStatusDropsPartialMessage(t *testing.T) {
	var d codec.Decoder
	// 0xF4 kills the quarter-frame in progress; the orphaned data byte
	// has no context and is dropped.
	assertFeeds(t, &d, []byte{0xF1, 0xF4, 0x30}, nil)
	assertFeeds(t, &d,
		[]byte{0xF1, 0x30},
		[]contracts.Message{contracts.TimeCodeQuarterFrame(0x30)})
}

func TestReservedStatusKeepsRunningStatus(t *testing.T) {
	assertDecodes(t,
		[]byte{0x90, 60, 100, 0xF5, 64, 90},
		[]contracts.Message{
			contracts.NoteOn(0, 60, 100),
			contracts.NoteOn(0, 64, 90),
		})
}

func TestTimeCodeQuarterFrame(t *testing.T) {
	assertDecodes(t,
		[]byte{0xF1, 0x35},
		[]contracts.Message{contracts.TimeCodeQuarterFrame(0x35)})
}

func TestSongPositionPointer(t *testing.T) {
	assertDecodes(t,
		[]byte{0xF2, 0x68, 0x2A},
		[]contracts.Message{contracts.SongPositionPointer(0x2A<<7 | 0x68)})
}

func TestSongSelect(t *testing.T) {
	assertDecodes(t,
		[]byte{0xF3, 0x09},
		[]contracts.Message{contracts.SongSelect(9)})
}

func TestTuneRequestCompletesImmediately(t *testing.T) {
	assertDecodes(t,
		[]byte{0xF6},
		[]contracts.Message{contracts.TuneRequest()})
}

func TestTuneRequestReplacesPartialMessage(t *testing.T) {
	var d codec.Decoder
	assertFeeds(t, &d, []byte{0xF1, 0xF6}, []contracts.Message{contracts.TuneRequest()})
	// The quarter frame never completes; its data byte is long gone.
	assertFeeds(t, &d, []byte{0x30}, nil)
}

func TestSystemCommonDoesNotSetRunningStatus(t *testing.T) {
	var d codec.Decoder
	assertFeeds(t, &d,
		[]byte{0xF3, 0x05},
		[]contracts.Message{contracts.SongSelect(5)})
	// No running status to lean on, so the bare data byte is dropped.
	assertFeeds(t, &d, []byte{0x06}, nil)
}

func TestSystemCommonPreservesRunningStatus(t *testing.T) {
	assertDecodes(t,
		[]byte{0x90, 60, 100, 0xF3, 0x05, 64, 90},
		[]contracts.Message{
			contracts.NoteOn(0, 60, 100),
			contracts.SongSelect(5),
			contracts.NoteOn(0, 64, 90),
		})
}

func TestReset(t *testing.T) {
	var d codec.Decoder
	assertFeeds(t, &d, []byte{0x90, 60, 100}, []contracts.Message{contracts.NoteOn(0, 60, 100)})
	d.Reset()
	// Neither the partial slot nor running status survive a reset.
	assertFeeds(t, &d, []byte{64, 90}, nil)
	assertFeeds(t, &d, []byte{0x90, 64, 90}, []contracts.Message{contracts.NoteOn(0, 64, 90)})
}

func TestFeedBytesSplitAcrossCalls(t *testing.T) {
	var d codec.Decoder
	assertFeeds(t, &d, []byte{0x95, 60}, nil)
	assertFeeds(t, &d, []byte{100, 62}, []contracts.Message{contracts.NoteOn(5, 60, 100)})
	assertFeeds(t, &d, []byte{90}, []contracts.Message{contracts.NoteOn(5, 62, 90)})
}

func BenchmarkDecoderFeed(b *testing.B) {
	// Running-status note pairs with a clock byte interleaved, the shape a
	// sequencer emits.
	stream := []byte{0x90, 60, 100, 64, 90, 0xF8, 67, 80, 0x80, 60, 0, 64, 0, 67, 0}
	var d codec.Decoder
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		d.Feed(stream[i%len(stream)])
	}
}
