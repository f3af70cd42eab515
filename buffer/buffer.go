package buffer

import "slices"

// Options configures a TextBuffer.
type Options struct {
	TabStop int // render width of a tab character; default 8
}

// TextBuffer is an ordered sequence of Rows, indices 0-based and
// contiguous. It is the exclusive owner of every Row in it.
type TextBuffer struct {
	rows  []*Row
	opt   Options
	dirty int
}

func New(opt Options) *TextBuffer {
	if opt.TabStop <= 0 {
		opt.TabStop = 8
	}
	return &TextBuffer{opt: opt}
}

// TabStop returns the configured tab stop.
func (b *TextBuffer) TabStop() int { return b.opt.TabStop }

// NumRows returns the number of rows.
func (b *TextBuffer) NumRows() int { return len(b.rows) }

// Row returns the row at index i, or nil when i is out of range.
func (b *TextBuffer) Row(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

// Dirty reports whether the buffer has unsaved mutations.
func (b *TextBuffer) Dirty() bool { return b.dirty > 0 }

// Changes returns the number of content mutations since the last load
// or save.
func (b *TextBuffer) Changes() int { return b.dirty }

// MarkClean resets the dirty counter. Called after a successful save.
func (b *TextBuffer) MarkClean() { b.dirty = 0 }

// Load replaces the buffer contents with the given lines and resets the
// dirty counter.
func (b *TextBuffer) Load(lines []string) {
	b.rows = b.rows[:0]
	for _, line := range lines {
		b.rows = append(b.rows, newRow([]byte(line), b.opt.TabStop))
	}
	b.dirty = 0
}

// InsertRow inserts a new row holding line at index at, shifting
// subsequent rows. at == NumRows appends; other out-of-range indices
// are a no-op.
func (b *TextBuffer) InsertRow(at int, line string) {
	if at < 0 || at > len(b.rows) {
		return
	}
	b.rows = slices.Insert(b.rows, at, newRow([]byte(line), b.opt.TabStop))
	b.dirty++
}

// DeleteRow removes the row at index at, shifting subsequent rows down.
// Out-of-range indices are a no-op.
func (b *TextBuffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	b.rows = slices.Delete(b.rows, at, at+1)
	b.dirty++
}

// InsertChar inserts byte c at (cy, cx) and returns the cursor position
// after the edit. Typing on the sentinel line past the last row first
// creates it; cx out of range clamps to the row length.
func (b *TextBuffer) InsertChar(cy, cx int, c byte) (int, int) {
	if cy < 0 || cy > len(b.rows) {
		return cy, cx
	}
	if cy == len(b.rows) {
		b.rows = append(b.rows, newRow(nil, b.opt.TabStop))
	}
	row := b.rows[cy]
	if cx < 0 || cx > len(row.chars) {
		cx = len(row.chars)
	}
	row.chars = slices.Insert(row.chars, cx, c)
	row.update(b.opt.TabStop)
	b.dirty++
	return cy, cx + 1
}

// InsertNewline splits the row at (cy, cx) and returns the cursor
// position after the edit: column 0 of the following row. At column 0
// an empty row is inserted above the current content instead.
func (b *TextBuffer) InsertNewline(cy, cx int) (int, int) {
	if cy < 0 || cy > len(b.rows) {
		return cy, cx
	}
	if cx <= 0 || cy == len(b.rows) {
		b.InsertRow(cy, "")
		return cy + 1, 0
	}
	row := b.rows[cy]
	if cx > len(row.chars) {
		cx = len(row.chars)
	}
	rest := string(row.chars[cx:])
	row.chars = row.chars[:cx]
	row.update(b.opt.TabStop)
	b.InsertRow(cy+1, rest)
	return cy + 1, 0
}

// DeleteChar removes the character left of (cy, cx) and returns the
// cursor position after the edit. At column 0 the row is appended onto
// the previous one and the cursor lands on the join point. No-op at the
// buffer start and on the sentinel line past the last row.
func (b *TextBuffer) DeleteChar(cy, cx int) (int, int) {
	if cy < 0 || cy >= len(b.rows) {
		return cy, cx
	}
	if cx == 0 && cy == 0 {
		return cy, cx
	}
	row := b.rows[cy]
	if cx > 0 {
		if cx > len(row.chars) {
			cx = len(row.chars)
		}
		row.chars = slices.Delete(row.chars, cx-1, cx)
		row.update(b.opt.TabStop)
		b.dirty++
		return cy, cx - 1
	}
	prev := b.rows[cy-1]
	join := len(prev.chars)
	prev.chars = append(prev.chars, row.chars...)
	prev.update(b.opt.TabStop)
	b.DeleteRow(cy)
	return cy - 1, join
}

// Contents returns the exact byte layout written on save: every row's
// raw content followed by a newline, in row order.
func (b *TextBuffer) Contents() []byte {
	n := 0
	for _, r := range b.rows {
		n += len(r.chars) + 1
	}
	out := make([]byte, 0, n)
	for _, r := range b.rows {
		out = append(out, r.chars...)
		out = append(out, '\n')
	}
	return out
}
