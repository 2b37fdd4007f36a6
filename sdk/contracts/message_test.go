package contracts_test

import (
	"testing"

	"github.com/midiwire/midiwire/sdk/contracts"
)

func TestConstructorMasking(t *testing.T) {
	// Out-of-range arguments fold into the valid wire ranges.
	m := contracts.NoteOn(0x17, 0x85, 0xFF)
	if m.Channel != 0x07 {
		t.Errorf("Channel = %d, want 7", m.Channel)
	}
	if m.Data1 != 0x05 {
		t.Errorf("Data1 = %#02X, want 0x05", m.Data1)
	}
	if m.Data2 != 0x7F {
		t.Errorf("Data2 = %#02X, want 0x7F", m.Data2)
	}

	if got := contracts.ProgramChange(16, 128); got.Channel != 0 || got.Data1 != 0 {
		t.Errorf("ProgramChange(16, 128) = %+v, want channel 0 program 0", got)
	}
}

func TestPitchBendSplit(t *testing.T) {
	cases := []struct {
		value        uint16
		data1, data2 uint8
	}{
		{0, 0x00, 0x00},
		{8192, 0x00, 0x40},
		{16383, 0x7F, 0x7F},
		{0x1234, 0x34, 0x24},
	}
	for _, c := range cases {
		m := contracts.PitchBend(0, c.value)
		if m.Data1 != c.data1 || m.Data2 != c.data2 {
			t.Errorf("PitchBend(0, %d) data = %#02X %#02X, want %#02X %#02X",
				c.value, m.Data1, m.Data2, c.data1, c.data2)
		}
		if got := m.Bend(); got != c.value {
			t.Errorf("PitchBend(0, %d).Bend() = %d", c.value, got)
		}
	}
}

func TestSongPositionPointerSplit(t *testing.T) {
	m := contracts.SongPositionPointer(5432)
	if m.Data1 != 0x38 || m.Data2 != 0x2A {
		t.Fatalf("data = %#02X %#02X, want 0x38 0x2A", m.Data1, m.Data2)
	}
	if got := m.Position(); got != 5432 {
		t.Fatalf("Position() = %d, want 5432", got)
	}
}

func TestAccessors(t *testing.T) {
	if got := contracts.NoteOn(1, 60, 100).Note(); got != 60 {
		t.Errorf("Note() = %d, want 60", got)
	}
	if got := contracts.NoteOff(1, 60, 64).Velocity(); got != 64 {
		t.Errorf("Velocity() = %d, want 64", got)
	}
	cc := contracts.ControlChange(4, 7, 0x55)
	if cc.Controller() != 7 || cc.Value() != 0x55 {
		t.Errorf("ControlChange accessors = %d %#02X, want 7 0x55", cc.Controller(), cc.Value())
	}
	if got := contracts.ProgramChange(9, 42).Program(); got != 42 {
		t.Errorf("Program() = %d, want 42", got)
	}
	if got := contracts.SongSelect(3).Song(); got != 3 {
		t.Errorf("Song() = %d, want 3", got)
	}
}

func TestPressureByKind(t *testing.T) {
	// Per-note pressure rides in the second data byte, channel pressure in
	// the first; Pressure hides the difference.
	if got := contracts.PolyAftertouch(1, 60, 99).Pressure(); got != 99 {
		t.Errorf("PolyAftertouch Pressure() = %d, want 99", got)
	}
	if got := contracts.ChannelAftertouch(1, 88).Pressure(); got != 88 {
		t.Errorf("ChannelAftertouch Pressure() = %d, want 88", got)
	}
}

func TestMessageString(t *testing.T) {
	cases := []struct {
		msg  contracts.Message
		want string
	}{
		{contracts.NoteOn(1, 60, 100), "NoteOn ch=1 note=60 vel=100"},
		{contracts.NoteOff(0, 60, 0), "NoteOff ch=0 note=60 vel=0"},
		{contracts.ControlChange(15, 64, 127), "ControlChange ch=15 cc=64 val=127"},
		{contracts.ProgramChange(2, 12), "ProgramChange ch=2 program=12"},
		{contracts.ChannelAftertouch(3, 80), "ChannelAftertouch ch=3 pressure=80"},
		{contracts.PitchBend(0, 8192), "PitchBend ch=0 bend=8192"},
		{contracts.SongPositionPointer(16), "SongPositionPointer beats=16"},
		{contracts.SongSelect(5), "SongSelect song=5"},
		{contracts.TimingClock(), "TimingClock"},
		{contracts.TuneRequest(), "TuneRequest"},
	}
	for _, c := range cases {
		if got := c.msg.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
