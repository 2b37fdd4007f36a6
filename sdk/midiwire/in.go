package midiwire

import (
	"context"
	"errors"
	"io"

	"github.com/midiwire/midiwire/sdk/codec"
	"github.com/midiwire/midiwire/sdk/contracts"
)

// In turns the byte stream of a port into decoded MIDI messages.
// Methods must not be called concurrently; run Capture on a single
// goroutine and close the port to unblock it.
type In struct {
	r      io.Reader
	dec    codec.Decoder
	queue  []contracts.Message
	filter map[contracts.Kind]struct{}
	buf    [256]byte
}

// NewIn wraps r, decoding its bytes into messages.
func NewIn(r io.Reader) *In {
	return &In{r: r}
}

// SetFilter restricts Capture to the listed message kinds. A nil filter
// or an empty kind list passes everything. Read is never filtered.
func (in *In) SetFilter(filter *contracts.MessageFilter) {
	if filter == nil || len(filter.Kinds) == 0 {
		in.filter = nil
		return
	}
	in.filter = make(map[contracts.Kind]struct{}, len(filter.Kinds))
	for _, kind := range filter.Kinds {
		in.filter[kind] = struct{}{}
	}
}

// Read returns the next complete message, blocking on the underlying
// reader until one arrives. Messages already decoded are handed out
// before any error from the reader is reported.
func (in *In) Read() (contracts.Message, error) {
	for len(in.queue) == 0 {
		n, err := in.r.Read(in.buf[:])
		if n > 0 {
			in.queue = in.dec.FeedBytes(in.buf[:n])
		}
		if err != nil && len(in.queue) == 0 {
			return contracts.Message{}, err
		}
	}
	msg := in.queue[0]
	in.queue = in.queue[1:]
	return msg, nil
}

// Capture pumps decoded messages into ch until ctx is canceled or the
// stream ends. End of stream returns nil; cancellation returns ctx.Err().
// A blocked Capture is released by closing the port.
func (in *In) Capture(ctx context.Context, ch chan<- contracts.Message) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := in.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !in.wants(msg.Kind) {
			continue
		}

		select {
		case ch <- msg:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (in *In) wants(kind contracts.Kind) bool {
	if in.filter == nil {
		return true
	}
	_, ok := in.filter[kind]
	return ok
}
