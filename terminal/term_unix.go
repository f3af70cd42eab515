//go:build unix

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// pollTimeout bounds every input wait, in milliseconds, so a pending
// escape byte can resolve and the loop never hangs on a silent tty.
const pollTimeout = 100

// Terminal owns the raw input discipline on stdin and the output stream
// on stdout.
type Terminal struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int
	prev  *term.State
}

// Open places stdin into raw mode: no echo, no line buffering, no
// signal-generating control characters. The caller must arrange for
// Restore to run unconditionally on exit.
func Open() (*Terminal, error) {
	t := &Terminal{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
	if !term.IsTerminal(t.inFd) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}
	prev, err := term.MakeRaw(t.inFd)
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	t.prev = prev
	return t, nil
}

// Restore returns the terminal to its original discipline. Safe to call
// more than once.
func (t *Terminal) Restore() error {
	if t.prev == nil {
		return nil
	}
	prev := t.prev
	t.prev = nil
	if err := term.Restore(t.inFd, prev); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}

// ReadByte returns the next input byte. ok is false when no byte
// arrived within the bounded wait; only a genuine read failure is an
// error.
func (t *Terminal) ReadByte() (byte, bool, error) {
	fds := []unix.PollFd{{Fd: int32(t.inFd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, pollTimeout)
	if err != nil {
		if err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("polling input: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}

	var buf [1]byte
	rn, err := unix.Read(t.inFd, buf[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("reading input: %w", err)
	}
	if rn == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Size returns the display dimensions in character cells. When the
// winsize ioctl fails it falls back to parking the cursor at the
// bottom-right corner and asking the terminal where it ended up.
func (t *Terminal) Size() (rows, cols int, err error) {
	w, h, err := term.GetSize(t.outFd)
	if err == nil && w > 0 {
		return h, w, nil
	}
	return t.cursorPositionSize()
}

func (t *Terminal) cursorPositionSize() (rows, cols int, err error) {
	if _, err := t.out.Write([]byte("\x1b[999C\x1b[999B\x1b[6n")); err != nil {
		return 0, 0, fmt.Errorf("querying cursor position: %w", err)
	}

	// The reply has the shape ESC [ rows ; cols R.
	var resp []byte
	for len(resp) < 32 {
		b, ok, err := t.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		if !ok || b == 'R' {
			break
		}
		resp = append(resp, b)
	}
	if len(resp) < 2 || resp[0] != 0x1b || resp[1] != '[' {
		return 0, 0, fmt.Errorf("unexpected cursor position reply %q", resp)
	}
	if _, err := fmt.Sscanf(string(resp[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("parsing cursor position reply %q: %w", resp, err)
	}
	return rows, cols, nil
}
