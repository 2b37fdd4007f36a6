package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/midiwire/midiwire/internal/logger"
	"github.com/midiwire/midiwire/sdk/contracts"
	"github.com/midiwire/midiwire/sdk/midiwire"
)

func main() {
	device := flag.String("device", "", "serial device to read from (empty lists ports)")
	flag.Parse()

	log := logger.NewZapLogger()

	if *device == "" {
		ports, err := midiwire.ListPorts(contracts.TransportSerial)
		if err != nil || len(ports) == 0 {
			log.Error("No serial ports found or error listing ports", log.Field().Error("error", err))
			return
		}
		fmt.Println("Available serial ports:")
		for _, p := range ports {
			fmt.Println("  ", p.Device)
		}
		return
	}

	conn, err := midiwire.Open(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
		contracts.WithDevice(*device),
		contracts.WithMessageFilter(contracts.MessageFilter{
			Kinds: []contracts.Kind{contracts.KindNoteOn, contracts.KindNoteOff},
		}),
	)
	if err != nil {
		log.Error("Failed to open MIDI connection", log.Field().Error("error", err))
		return
	}
	defer conn.Close()

	messages := make(chan contracts.Message, 100)
	go func() {
		for msg := range messages {
			log.Info("MIDI message",
				log.Field().String("kind", msg.Kind.String()),
				log.Field().Uint8("channel", msg.Channel),
				log.Field().Uint8("note", msg.Note()),
				log.Field().Uint8("velocity", msg.Velocity()),
			)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("Capturing note messages... Press Ctrl+C to exit.")
	if err := conn.In.Capture(ctx, messages); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Capture stopped", log.Field().Error("error", err))
	}
}
