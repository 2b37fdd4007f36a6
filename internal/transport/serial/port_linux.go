//go:build linux
// +build linux

package serial

import "golang.org/x/sys/unix"

// portGlobs lists the device patterns ListPorts enumerates.
var portGlobs = []string{"/dev/ttyS*", "/dev/ttyUSB*", "/dev/ttyACM*", "/dev/ttyAMA*"}

// configure puts fd into raw 8N1 mode at the given rate and returns the
// settings it replaced. The rate goes through termios2/BOTHER because the
// classic Bxxx table has no entry for MIDI's 31250 baud.
func configure(fd, baud int) (*unix.Termios, error) {
	tio, err := unix.IoctlGetTermios(fd, unix.TCGETS2)
	if err != nil {
		return nil, err
	}
	saved := *tio

	tio.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	tio.Oflag &^= unix.OPOST
	tio.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	tio.Cflag &^= unix.CSIZE | unix.PARENB | unix.CSTOPB | unix.CBAUD
	tio.Cflag |= unix.CS8 | unix.CREAD | unix.CLOCAL | unix.BOTHER
	tio.Ispeed = uint32(baud)
	tio.Ospeed = uint32(baud)

	// Deliver bytes as they arrive; no inter-byte timeout.
	tio.Cc[unix.VMIN] = 1
	tio.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, unix.TCSETS2, tio); err != nil {
		return nil, err
	}
	return &saved, nil
}

func restore(fd int, tio *unix.Termios) error {
	return unix.IoctlSetTermios(fd, unix.TCSETS2, tio)
}
