//go:build windows
// +build windows

package winmm

import (
	"fmt"
	"io"
	"sync"
	"unsafe"

	"go.uber.org/multierr"
	"golang.org/x/sys/windows"

	"github.com/midiwire/midiwire/sdk/contracts"
)

// hMidiIn is a WinMM MIDI input device handle.
type hMidiIn windows.Handle

// Constants for callback flags
const (
	CALLBACK_FUNCTION = 0x00030000 // Indicates that the callback is a function
	MIDI_IO_STATUS    = 0x00000020 // MIDI input/output status
)

// Constants for MIDI message types
const (
	MIM_OPEN      = 0x3C1 // MIDI device opened
	MIM_CLOSE     = 0x3C2 // MIDI device closed
	MIM_DATA      = 0x3C3 // MIDI data received
	MIM_ERROR     = 0x3C5 // MIDI error
	MIM_LONGERROR = 0x3C6 // Long MIDI error
	MIM_MOREDATA  = 0x3CC // More MIDI data available
)

// Struct representing MIDI device capabilities
type midiInCaps struct {
	wMid           uint16
	wPid           uint16
	vDriverVersion uint32
	szPname        [32]uint16
	dwSupport      uint32
}

// Load the winmm.dll library and required functions
var (
	winmmDLL             = windows.NewLazySystemDLL("winmm.dll")
	procMidiInGetNumDevs = winmmDLL.NewProc("midiInGetNumDevs")
	procMidiInGetDevCaps = winmmDLL.NewProc("midiInGetDevCapsW")
	procMidiInOpen       = winmmDLL.NewProc("midiInOpen")
	procMidiInStart      = winmmDLL.NewProc("midiInStart")
	procMidiInStop       = winmmDLL.NewProc("midiInStop")
	procMidiInClose      = winmmDLL.NewProc("midiInClose")
)

// midiInCallbackPtr is created once; Windows callback thunks are a finite
// resource and are never released.
var midiInCallbackPtr = windows.NewCallback(midiInCallback)

// Port taps one WinMM input device. The driver pushes messages from its
// own thread into a bounded buffer; Read drains them in order. Write is
// unsupported, input devices only produce.
type Port struct {
	log       contracts.Logger
	handle    hMidiIn
	packets   chan []byte
	pending   []byte // remainder of a partially consumed message
	closed    chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// Open opens and starts the input device selected by opts.WinMMConfig.
func Open(opts *contracts.ClientOptions) (contracts.Port, error) {
	deviceID := 0
	if opts.WinMMConfig != nil {
		deviceID = opts.WinMMConfig.DeviceID
	}

	r0, _, _ := procMidiInGetNumDevs.Call()
	numDevices := int(r0)
	if numDevices == 0 {
		opts.Logger.Warn(ErrNoDevices.Error())
		return nil, ErrNoDevices
	}
	if deviceID < 0 || deviceID >= numDevices {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDevice, deviceID)
	}

	p := &Port{
		log:     opts.Logger,
		packets: make(chan []byte, 256),
		closed:  make(chan struct{}),
	}

	r1, _, err := procMidiInOpen.Call(
		uintptr(unsafe.Pointer(&p.handle)),
		uintptr(deviceID),
		midiInCallbackPtr,
		uintptr(unsafe.Pointer(p)),
		uintptr(CALLBACK_FUNCTION|MIDI_IO_STATUS),
	)
	if r1 != 0 {
		return nil, fmt.Errorf("opening MIDI device %d: %v", deviceID, err)
	}

	if r1, _, err := procMidiInStart.Call(uintptr(p.handle)); r1 != 0 {
		procMidiInClose.Call(uintptr(p.handle))
		return nil, fmt.Errorf("starting MIDI capture: %v", err)
	}

	opts.Logger.Info("MIDI device connected", opts.Logger.Field().Int("device", deviceID))
	return p, nil
}

// midiInCallback processes incoming MIDI messages on the driver's thread.
func midiInCallback(hmi uintptr, wMsg uint32, dwInstance uintptr, dwParam1 uintptr, dwParam2 uintptr) uintptr {
	p := (*Port)(unsafe.Pointer(dwInstance))

	switch wMsg {
	case MIM_OPEN:
		p.log.Info("MIDI device opened")
	case MIM_CLOSE:
		p.log.Info("MIDI device closed")
	case MIM_DATA:
		p.push(dwParam1)
	case MIM_ERROR, MIM_LONGERROR:
		p.log.Error(fmt.Sprintf("MIDI error: msg=0x%X", wMsg))
	case MIM_MOREDATA:
		p.log.Debug("Received MIM_MOREDATA message; ignored")
	default:
		p.log.Warn(fmt.Sprintf("Unknown MIDI message: 0x%X", wMsg))
	}

	return 0
}

// push reconstructs the wire bytes of the message packed into dwParam1 and
// queues them. The driver always includes the status byte; the kind's data
// length decides how many of the packed bytes are real. When the buffer is
// full the message is dropped rather than stalling the driver's thread.
func (p *Port) push(dwParam1 uintptr) {
	status := byte(dwParam1)
	kind := contracts.KindForStatus(status)
	if kind == contracts.KindInvalid {
		return
	}
	// SysEx travels in MIM_LONGDATA buffers this port never prepares; a
	// framing byte leaking through here would open a frame that no
	// terminator ever closes.
	if kind == contracts.KindSysExBegin || kind == contracts.KindSysExEnd {
		return
	}

	wire := []byte{status, byte(dwParam1 >> 8), byte(dwParam1 >> 16)}
	data := wire[:1+kind.DataLen()]

	select {
	case <-p.closed:
	case p.packets <- data:
	default:
		p.log.Warn("Packet buffer full; dropping MIDI message")
	}
}

// Read hands out buffered message bytes, blocking until some arrive.
// Buffered messages are still delivered after Close; Read returns io.EOF
// once they run out.
func (p *Port) Read(b []byte) (int, error) {
	if len(p.pending) == 0 {
		select {
		case data := <-p.packets:
			p.pending = data
		default:
			select {
			case data := <-p.packets:
				p.pending = data
			case <-p.closed:
				return 0, io.EOF
			}
		}
	}
	n := copy(b, p.pending)
	p.pending = p.pending[n:]
	return n, nil
}

// Write is unsupported; WinMM input devices only produce bytes.
func (p *Port) Write(b []byte) (int, error) {
	return 0, ErrReceiveOnly
}

// Close stops capture, closes the device and wakes any blocked Read.
// Safe to call more than once.
func (p *Port) Close() error {
	p.closeOnce.Do(func() {
		p.log.Info("Disconnecting MIDI device")
		if r1, _, err := procMidiInStop.Call(uintptr(p.handle)); r1 != 0 {
			p.closeErr = fmt.Errorf("stopping MIDI capture: %v", err)
		}
		if r1, _, err := procMidiInClose.Call(uintptr(p.handle)); r1 != 0 {
			p.closeErr = multierr.Append(p.closeErr, fmt.Errorf("closing MIDI device: %v", err))
		}
		close(p.closed)
	})
	return p.closeErr
}

// ListPorts enumerates the WinMM input devices currently present.
func ListPorts() ([]contracts.PortInfo, error) {
	r0, _, _ := procMidiInGetNumDevs.Call()
	numDevices := uint32(r0)
	if numDevices == 0 {
		return nil, ErrNoDevices
	}

	ports := make([]contracts.PortInfo, 0, numDevices)
	for i := uint32(0); i < numDevices; i++ {
		var caps midiInCaps
		r1, _, _ := procMidiInGetDevCaps.Call(
			uintptr(i),
			uintptr(unsafe.Pointer(&caps)),
			unsafe.Sizeof(caps),
		)
		if r1 != 0 {
			continue
		}
		ports = append(ports, contracts.PortInfo{
			Name:         windows.UTF16ToString(caps.szPname[:]),
			Manufacturer: fmt.Sprintf("MID: %d PID: %d", caps.wMid, caps.wPid),
		})
	}
	return ports, nil
}
