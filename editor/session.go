package editor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/internal/textfile"
	"github.com/iw2rmb/quill/terminal"
)

type statusMessage struct {
	text string
	when time.Time
}

// Session owns all editor state: the text buffer, the viewport, the
// filename, and the status message. It is mutated only by the single
// editor loop; there are no ambient globals.
type Session struct {
	cfg  Config
	buf  *buffer.TextBuffer
	view Viewport

	out  io.Writer
	keys *terminal.Decoder

	filename  string
	status    statusMessage
	quitsLeft int

	now func() time.Time
}

// New builds a session reading keys from in and writing frames to out.
// Two of cfg.Rows are reserved for the status and message bars. in may
// be nil for a session driven by injected keys; any operation that
// needs to read a key then returns an error instead of panicking.
func New(cfg Config, in terminal.ByteSource, out io.Writer) *Session {
	cfg = cfg.withDefaults()
	rows := cfg.Rows - 2
	if rows < 0 {
		rows = 0
	}
	s := &Session{
		cfg:       cfg,
		buf:       buffer.New(buffer.Options{TabStop: cfg.TabStop}),
		out:       out,
		quitsLeft: cfg.QuitConfirm,
		now:       time.Now,
	}
	if in != nil {
		s.keys = terminal.NewDecoder(in)
	}
	s.view = Viewport{ScreenRows: rows, ScreenCols: cfg.Cols}
	return s
}

// Buffer returns the session's text buffer.
func (s *Session) Buffer() *buffer.TextBuffer { return s.buf }

// Open loads the file at path into the buffer and records the filename.
func (s *Session) Open(path string) error {
	lines, err := textfile.ReadLines(path)
	if err != nil {
		return err
	}
	s.buf.Load(lines)
	s.filename = path
	return nil
}

// Save writes the buffer to its file, prompting for a name when none is
// set. I/O failures are reported on the status bar and leave the buffer
// and dirty flag untouched; only a prompt read failure is returned.
func (s *Session) Save() error {
	if s.filename == "" {
		name, err := s.prompt("Save as: %s (ESC to cancel)")
		if err != nil {
			return err
		}
		if name == "" {
			s.SetStatusMessage("Save aborted")
			return nil
		}
		s.filename = name
	}

	n, err := textfile.Write(s.filename, s.buf.Contents())
	if err != nil {
		s.SetStatusMessage("Can't save! I/O error: %v", err)
		return nil
	}
	s.buf.MarkClean()
	s.SetStatusMessage("%d bytes written to disk", n)
	return nil
}

// SetStatusMessage replaces the message bar text and stamps it with the
// current time.
func (s *Session) SetStatusMessage(format string, args ...any) {
	s.status = statusMessage{text: fmt.Sprintf(format, args...), when: s.now()}
}

// errNoInput reports a key read on a session built without an input
// source. Such sessions can still render and take injected keys.
var errNoInput = errors.New("session has no input source")

func (s *Session) readKey() (terminal.Key, error) {
	if s.keys == nil {
		return 0, errNoInput
	}
	return s.keys.Next()
}

// Run drives the editor loop: redraw, wait for a key, dispatch. It
// returns nil on a normal quit, after clearing the screen.
func (s *Session) Run() error {
	for {
		if err := s.Refresh(); err != nil {
			return err
		}
		k, err := s.readKey()
		if err != nil {
			return err
		}
		quit, err := s.ProcessKey(k)
		if err != nil {
			return err
		}
		if quit {
			var out bytes.Buffer
			out.Write(terminal.ClearScreen)
			out.Write(terminal.CursorHome)
			_, err := s.out.Write(out.Bytes())
			return err
		}
	}
}

// ProcessKey dispatches one decoded key. quit is true when the session
// should end.
func (s *Session) ProcessKey(k terminal.Key) (quit bool, err error) {
	v := &s.view

	switch k {
	case terminal.Ctrl('q'):
		if s.buf.Dirty() && s.quitsLeft > 0 {
			s.SetStatusMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", s.quitsLeft)
			s.quitsLeft--
			return false, nil
		}
		return true, nil

	case terminal.Ctrl('s'):
		if err := s.Save(); err != nil {
			return false, err
		}

	case terminal.Ctrl('f'):
		if err := s.Find(); err != nil {
			return false, err
		}

	case terminal.KeyUp, terminal.KeyDown, terminal.KeyLeft, terminal.KeyRight:
		s.moveCursor(k)

	case terminal.KeyPageUp, terminal.KeyPageDown:
		s.pageMove(k)

	case terminal.KeyHome:
		v.Cx = 0

	case terminal.KeyEnd:
		if row := s.buf.Row(v.Cy); row != nil {
			v.Cx = row.Len()
		}

	case terminal.KeyEnter:
		v.Cy, v.Cx = s.buf.InsertNewline(v.Cy, v.Cx)

	case terminal.KeyBackspace, terminal.Ctrl('h'):
		v.Cy, v.Cx = s.buf.DeleteChar(v.Cy, v.Cx)

	case terminal.KeyDelete:
		s.moveCursor(terminal.KeyRight)
		v.Cy, v.Cx = s.buf.DeleteChar(v.Cy, v.Cx)

	case terminal.Ctrl('l'), terminal.KeyEscape:
		// Ignored: the screen is redrawn every cycle anyway.

	default:
		if k.Printable() {
			v.Cy, v.Cx = s.buf.InsertChar(v.Cy, v.Cx, byte(k))
		}
	}

	s.quitsLeft = s.cfg.QuitConfirm
	return false, nil
}

// moveCursor applies one arrow key. Left at column 0 wraps to the end
// of the previous line; right at line end wraps to the start of the
// next. Vertical moves snap the column to the new row's length.
func (s *Session) moveCursor(k terminal.Key) {
	v := &s.view
	row := s.buf.Row(v.Cy)

	switch k {
	case terminal.KeyLeft:
		if v.Cx > 0 {
			v.Cx--
		} else if v.Cy > 0 {
			v.Cy--
			v.Cx = s.buf.Row(v.Cy).Len()
		}
	case terminal.KeyRight:
		if row != nil && v.Cx < row.Len() {
			v.Cx++
		} else if row != nil && v.Cx == row.Len() {
			v.Cy++
			v.Cx = 0
		}
	case terminal.KeyUp:
		if v.Cy > 0 {
			v.Cy--
		}
	case terminal.KeyDown:
		if v.Cy < s.buf.NumRows() {
			v.Cy++
		}
	}

	maxCx := 0
	if row := s.buf.Row(v.Cy); row != nil {
		maxCx = row.Len()
	}
	if v.Cx > maxCx {
		v.Cx = maxCx
	}
}

// pageMove jumps the cursor to the window edge, then moves a full
// screen of rows in the paging direction.
func (s *Session) pageMove(k terminal.Key) {
	v := &s.view

	if k == terminal.KeyPageUp {
		v.Cy = v.RowOff
	} else {
		v.Cy = v.RowOff + v.ScreenRows - 1
		if v.Cy > s.buf.NumRows() {
			v.Cy = s.buf.NumRows()
		}
	}

	dir := terminal.KeyUp
	if k == terminal.KeyPageDown {
		dir = terminal.KeyDown
	}
	for i := 0; i < v.ScreenRows; i++ {
		s.moveCursor(dir)
	}
}

// prompt reads a line of input on the message bar. format must contain
// a %s for the pending input. An empty result means cancellation.
func (s *Session) prompt(format string) (string, error) {
	var input []byte
	for {
		s.SetStatusMessage(format, input)
		if err := s.Refresh(); err != nil {
			return "", err
		}
		k, err := s.readKey()
		if err != nil {
			return "", err
		}

		switch {
		case k == terminal.KeyEnter:
			if len(input) > 0 {
				s.SetStatusMessage("")
				return string(input), nil
			}
		case k == terminal.KeyEscape:
			s.SetStatusMessage("")
			return "", nil
		case k == terminal.KeyBackspace || k == terminal.Ctrl('h') || k == terminal.KeyDelete:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case k.Printable():
			input = append(input, byte(k))
		}
	}
}
