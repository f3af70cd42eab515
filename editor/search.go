package editor

import (
	"strings"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/terminal"
)

type searchState uint8

const (
	searchPrompting searchState = iota
	searchCommitted
	searchCancelled
)

// SearchSession drives one incremental search prompt. It saves the
// viewport state on entry, relocates the cursor as the query changes,
// and restores the saved state exactly on cancellation.
type SearchSession struct {
	buf  *buffer.TextBuffer
	view *Viewport

	query []byte
	state searchState

	savedCx, savedCy         int
	savedRowOff, savedColOff int

	lastMatch int // row of the previous hit, -1 for none
	forward   bool
}

func NewSearch(buf *buffer.TextBuffer, view *Viewport) *SearchSession {
	return &SearchSession{
		buf:         buf,
		view:        view,
		savedCx:     view.Cx,
		savedCy:     view.Cy,
		savedRowOff: view.RowOff,
		savedColOff: view.ColOff,
		lastMatch:   -1,
		forward:     true,
	}
}

// Query returns the pending query text.
func (f *SearchSession) Query() string { return string(f.query) }

// Done reports whether the prompt has been committed or cancelled.
func (f *SearchSession) Done() bool { return f.state != searchPrompting }

// Committed reports whether the prompt ended by accepting a match.
func (f *SearchSession) Committed() bool { return f.state == searchCommitted }

// Step feeds one key into the prompt. Printable keys and backspace edit
// the query and restart matching from scratch; arrows repeat the search
// forward or backward; Enter commits a non-empty query; Escape cancels
// and restores the saved viewport state.
func (f *SearchSession) Step(k terminal.Key) {
	if f.state != searchPrompting {
		return
	}

	switch {
	case k == terminal.KeyEnter:
		if len(f.query) > 0 {
			f.state = searchCommitted
		}
		return
	case k == terminal.KeyEscape:
		f.state = searchCancelled
		f.restore()
		return
	case k == terminal.KeyBackspace || k == terminal.Ctrl('h') || k == terminal.KeyDelete:
		if len(f.query) > 0 {
			f.query = f.query[:len(f.query)-1]
		}
		f.lastMatch = -1
		f.forward = true
	case k == terminal.KeyRight || k == terminal.KeyDown:
		f.forward = true
	case k == terminal.KeyLeft || k == terminal.KeyUp:
		f.forward = false
	case k.Printable():
		f.query = append(f.query, byte(k))
		f.lastMatch = -1
		f.forward = true
	default:
		return
	}

	f.match()
}

// match scans rows starting one step from the previous hit, wrapping
// around the buffer exactly once, for the first row whose render
// content contains the query.
func (f *SearchSession) match() {
	if len(f.query) == 0 {
		return
	}

	dir := 1
	if !f.forward && f.lastMatch != -1 {
		// Backward repeat needs a prior hit to step back from; without
		// one the scan starts forward from the top.
		dir = -1
	}

	current := f.lastMatch
	n := f.buf.NumRows()
	query := string(f.query)

	for i := 0; i < n; i++ {
		current += dir
		if current == -1 {
			current = n - 1
		} else if current == n {
			current = 0
		}

		row := f.buf.Row(current)
		idx := strings.Index(row.Render(), query)
		if idx < 0 {
			continue
		}

		f.lastMatch = current
		f.view.Cy = current
		f.view.Cx = row.RxToCx(idx, f.buf.TabStop())
		// Push the window past the end so the next scroll pass lands
		// the match row at the top of the screen.
		f.view.RowOff = n
		return
	}
}

func (f *SearchSession) restore() {
	f.view.Cx, f.view.Cy = f.savedCx, f.savedCy
	f.view.RowOff, f.view.ColOff = f.savedRowOff, f.savedColOff
}

// Find runs the interactive search prompt until it commits or cancels.
func (s *Session) Find() error {
	f := NewSearch(s.buf, &s.view)
	for !f.Done() {
		s.SetStatusMessage("Search: %s (Use ESC/Arrows/Enter)", f.Query())
		if err := s.Refresh(); err != nil {
			return err
		}
		k, err := s.readKey()
		if err != nil {
			return err
		}
		f.Step(k)
	}
	s.SetStatusMessage("")
	return nil
}
