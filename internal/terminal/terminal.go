// Package terminal puts the host's standard input into raw,
// non-canonical, no-echo mode for the duration of a run and restores the
// original mode on exit.
package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// RawGuard holds the terminal state captured before entering raw mode, so
// it can be restored exactly once.
type RawGuard struct {
	fd       int
	original *unix.Termios
}

// MakeRaw puts fd into raw mode: no line buffering, no echo, no signal
// generation from control characters, and reads that return immediately
// with whatever bytes (possibly none) are already available. If fd does
// not refer to a terminal, MakeRaw is a no-op and Restore on the returned
// guard does nothing.
func MakeRaw(fd int) (*RawGuard, error) {
	original, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		// Not a terminal (e.g. input redirected from a file/pipe): leave
		// the guard inert rather than failing the run.
		return &RawGuard{fd: fd}, nil
	}

	raw := *original
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	// VMIN=0, VTIME=0: read() returns immediately with whatever bytes are
	// already available, possibly none, rather than blocking for the next
	// keystroke. The ACIA's Tick pumps stdin on every CPU cycle and must
	// never stall the run loop waiting on the terminal.
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return nil, err
	}
	return &RawGuard{fd: fd, original: original}, nil
}

// Restore puts the terminal back into the mode captured by MakeRaw. Safe to
// call on a guard obtained from a non-terminal fd, and safe to call more
// than once.
func (g *RawGuard) Restore() error {
	if g == nil || g.original == nil {
		return nil
	}
	err := unix.IoctlSetTermios(g.fd, ioctlSetTermios, g.original)
	g.original = nil
	return err
}

// StdinGuard is a convenience wrapper around MakeRaw(int(os.Stdin.Fd())).
func StdinGuard() (*RawGuard, error) {
	return MakeRaw(int(os.Stdin.Fd()))
}
