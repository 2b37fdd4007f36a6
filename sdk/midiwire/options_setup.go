package midiwire

import (
	"github.com/midiwire/midiwire/internal/logger"
	"github.com/midiwire/midiwire/sdk/contracts"
)

// defaultBaudRate is the MIDI 1.0 DIN transmission rate.
const defaultBaudRate = 31250

// applyDefaultOptions sets default values for ClientOptions if not explicitly provided.
func applyDefaultOptions(opts ...contracts.Option) contracts.ClientOptions {
	options := &contracts.ClientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Set defaults if options are not provided
	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.LogLevel == 0 {
		options.LogLevel = contracts.InfoLevel
	}
	if options.Transport == "" {
		options.Transport = contracts.TransportSerial
	}
	if options.BaudRate == 0 {
		options.BaudRate = defaultBaudRate
	}
	if options.CoreMIDIConfig == nil {
		options.CoreMIDIConfig = &contracts.CoreMIDIConfig{ClientName: "midiwire"}
	}
	if options.WinMMConfig == nil {
		options.WinMMConfig = &contracts.WinMMConfig{}
	}

	options.Logger.SetLevel(options.LogLevel)
	return *options
}
