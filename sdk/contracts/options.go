package contracts

// Transport names understood by the client factory.
const (
	// TransportSerial reads and writes MIDI bytes over a serial device
	// (UART, USB-serial adapter). The default.
	TransportSerial = "serial"
	// TransportCoreMIDI taps a CoreMIDI source for incoming bytes.
	// Receive-only; available on macOS.
	TransportCoreMIDI = "coremidi"
	// TransportWinMM taps a WinMM input device for incoming bytes.
	// Receive-only; available on Windows.
	TransportWinMM = "winmm"
)

// MessageFilter restricts which decoded messages a capture loop delivers.
// An empty Kinds list passes everything.
type MessageFilter struct {
	Kinds []Kind // Message kinds to deliver.
}

// CoreMIDIConfig holds configuration for the CoreMIDI transport.
type CoreMIDIConfig struct {
	ClientName string // Name the MIDI client registers with the system.
	Source     int    // Index of the source to connect, as listed by ListPorts.
}

// WinMMConfig holds configuration for the WinMM transport.
type WinMMConfig struct {
	DeviceID int // Index of the input device to open, as listed by ListPorts.
}

// ClientOptions defines the configuration for opening a MIDI connection.
type ClientOptions struct {
	Logger         Logger          // Logger for lifecycle events and errors.
	LogLevel       LogLevel        // Minimum level the logger emits.
	Transport      string          // Transport name; TransportSerial when empty.
	Device         string          // Serial device path, e.g. /dev/ttyUSB0.
	BaudRate       int             // Serial line rate; 31250 (the MIDI rate) when zero.
	MessageFilter  *MessageFilter  // Optional filter applied by capture loops.
	CoreMIDIConfig *CoreMIDIConfig // Configuration specific to CoreMIDI.
	WinMMConfig    *WinMMConfig    // Configuration specific to WinMM.
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the connection.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the connection.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithTransport selects the byte transport by name.
func WithTransport(name string) Option {
	return func(opts *ClientOptions) {
		opts.Transport = name
	}
}

// WithDevice sets the serial device path.
func WithDevice(path string) Option {
	return func(opts *ClientOptions) {
		opts.Device = path
	}
}

// WithBaudRate overrides the serial line rate. MIDI hardware runs at 31250
// baud; USB bridges sometimes present other rates.
func WithBaudRate(baud int) Option {
	return func(opts *ClientOptions) {
		opts.BaudRate = baud
	}
}

// WithMessageFilter restricts captured messages to the given kinds.
func WithMessageFilter(filter MessageFilter) Option {
	return func(opts *ClientOptions) {
		opts.MessageFilter = &filter
	}
}

// WithCoreMIDIConfig sets the CoreMIDI configuration.
func WithCoreMIDIConfig(config CoreMIDIConfig) Option {
	return func(opts *ClientOptions) {
		opts.CoreMIDIConfig = &config
	}
}

// WithWinMMConfig sets the WinMM configuration.
func WithWinMMConfig(config WinMMConfig) Option {
	return func(opts *ClientOptions) {
		opts.WinMMConfig = &config
	}
}
