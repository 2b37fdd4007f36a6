package midiwire

import (
	"io"

	"github.com/midiwire/midiwire/sdk/codec"
	"github.com/midiwire/midiwire/sdk/contracts"
)

// Out encodes MIDI messages onto a port, compressing repeats with
// running status. Methods must not be called concurrently.
type Out struct {
	w   io.Writer
	enc codec.Encoder
}

// NewOut wraps w, encoding messages into its byte stream.
func NewOut(w io.Writer) *Out {
	return &Out{w: w}
}

// Write encodes m and writes its wire bytes. A failed write clears the
// running status; the far side may not have seen the last status byte.
func (out *Out) Write(m contracts.Message) error {
	b, err := out.enc.Encode(m)
	if err != nil {
		return err
	}
	if _, err := out.w.Write(b); err != nil {
		out.enc.Reset()
		return err
	}
	return nil
}

// Reset forgets the running status; the next message carries its status
// byte explicitly. Call it after the far side may have lost sync.
func (out *Out) Reset() {
	out.enc.Reset()
}
