package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register rtmidi driver

	"github.com/midiwire/midiwire/internal/logger"
	"github.com/midiwire/midiwire/sdk/codec"
	"github.com/midiwire/midiwire/sdk/contracts"
	"github.com/midiwire/midiwire/sdk/midiwire"
)

// Bridges a serial MIDI stream into a system MIDI output port, so DIN
// hardware on a UART can drive synths the operating system knows about.
func main() {
	device := flag.String("device", "/dev/ttyUSB0", "serial device to read from")
	portName := flag.String("port", "", "system MIDI output port (empty lists ports)")
	flag.Parse()

	log := logger.NewZapLogger()
	defer midi.CloseDriver()

	if *portName == "" {
		fmt.Println("Available MIDI output ports:")
		for _, out := range midi.GetOutPorts() {
			fmt.Println("  ", out.String())
		}
		return
	}

	var outPort drivers.Out
	for _, out := range midi.GetOutPorts() {
		if out.String() == *portName {
			outPort = out
			break
		}
	}
	if outPort == nil {
		log.Error("Output port not found", log.Field().String("port", *portName))
		return
	}

	send, err := midi.SendTo(outPort)
	if err != nil {
		log.Error("Failed to open output port", log.Field().Error("error", err))
		return
	}

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

	fmt.Println("Bridging... Press Ctrl+C to exit.")
	for {
		msg, err := conn.In.Read()
		if err != nil {
			if ctx.Err() == nil {
				log.Error("Read failed", log.Field().Error("error", err))
			}
			return
		}
		// SysEx arrives here as bare framing markers; the payload cannot be
		// rebuilt into the complete message the driver expects.
		if msg.Kind == contracts.KindSysExBegin || msg.Kind == contracts.KindSysExEnd {
			continue
		}

		wire, err := codec.Marshal(msg)
		if err != nil {
			log.Error("Failed to encode message", log.Field().Error("error", err))
			continue
		}
		if err := send(midi.Message(wire)); err != nil {
			log.Error("Failed to send message", log.Field().Error("error", err))
		}
	}
}
