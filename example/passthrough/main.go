package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/midiwire/midiwire/internal/logger"
	"github.com/midiwire/midiwire/sdk/contracts"
	"github.com/midiwire/midiwire/sdk/midiwire"
)

// A soft MIDI thru: every message decoded from the device is re-encoded
// and written straight back to it.
func main() {
	device := flag.String("device", "/dev/ttyUSB0", "serial device to loop through")
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		// Closing the port unblocks the read loop below.
		<-ctx.Done()
		conn.Close()
	}()

	fmt.Println("Passing MIDI through... Press Ctrl+C to exit.")
	for {
		msg, err := conn.In.Read()
		if err != nil {
			if ctx.Err() == nil {
				log.Error("Read failed", log.Field().Error("error", err))
			}
			return
		}
		if err := conn.Out.Write(msg); err != nil {
			log.Error("Write failed", log.Field().Error("error", err))
			return
		}
		log.Debug("Forwarded message", log.Field().String("message", msg.String()))
	}
}
