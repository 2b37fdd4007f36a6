package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/midiwire/midiwire/internal/logger"
	"github.com/midiwire/midiwire/sdk/contracts"
	"github.com/midiwire/midiwire/sdk/midiwire"
)

func main() {
	device := flag.String("device", "/dev/ttyUSB0", "serial device to write to")
	channel := flag.Uint("channel", 0, "MIDI channel (0-15)")
	flag.Parse()

	log := logger.NewZapLogger()

	conn, err := midiwire.Open(
		contracts.WithLogger(log),
		contracts.WithDevice(*device),
	)
	if err != nil {
		log.Error("Failed to open MIDI connection", log.Field().Error("error", err))
		return
	}
	defer conn.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// C major arpeggio, looped until interrupted.
	notes := []uint8{60, 64, 67, 72}
	ch := uint8(*channel)

	fmt.Println("Sending notes... Press Ctrl+C to exit.")
	for {
		for _, note := range notes {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if err := conn.Out.Write(contracts.NoteOn(ch, note, 100)); err != nil {
				log.Error("Failed to send note on", log.Field().Error("error", err))
				return
			}
			time.Sleep(200 * time.Millisecond)

			if err := conn.Out.Write(contracts.NoteOff(ch, note, 0)); err != nil {
				log.Error("Failed to send note off", log.Field().Error("error", err))
				return
			}
			time.Sleep(50 * time.Millisecond)
		}
	}
}
