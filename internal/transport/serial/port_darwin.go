//go:build darwin
// +build darwin

package serial

import "golang.org/x/sys/unix"

// portGlobs lists the device patterns ListPorts enumerates. The cu.*
// entries are the callout devices USB-serial bridges register.
var portGlobs = []string{"/dev/tty.*", "/dev/cu.*"}

// iossiospeed programs a nonstandard line rate through the IOKit serial
// driver; the termios Bxxx table has no entry for MIDI's 31250 baud.
const iossiospeed = 0x80045402

// configure puts fd into raw 8N1 mode at the given rate and returns the
// settings it replaced.
func configure(fd, baud int) (*unix.Termios, error) {
	tio, err := unix.IoctlGetTermios(fd, unix.TIOCGETA)
	if err != nil {
		return nil, err
	}
	saved := *tio

	tio.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	tio.Oflag &^= unix.OPOST
	tio.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	tio.Cflag &^= unix.CSIZE | unix.PARENB | unix.CSTOPB
	tio.Cflag |= unix.CS8 | unix.CREAD | unix.CLOCAL

	// Deliver bytes as they arrive; no inter-byte timeout.
	tio.Cc[unix.VMIN] = 1
	tio.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, unix.TIOCSETA, tio); err != nil {
		return nil, err
	}
	if err := unix.IoctlSetPointerInt(fd, iossiospeed, baud); err != nil {
		return nil, err
	}
	return &saved, nil
}

func restore(fd int, tio *unix.Termios) error {
	return unix.IoctlSetTermios(fd, unix.TIOCSETA, tio)
}
