package editor

import "github.com/iw2rmb/quill/buffer"

// Viewport tracks the cursor in buffer coordinates (Cx, Cy), its render
// column (Rx, derived from Cx on every scroll pass), and the scroll
// origin of the visible window.
//
// Cy ranges over [0, numrows]: numrows is the legal past-last-line
// sentinel. Cx ranges over [0, row length] on a real row and is 0 on
// the sentinel line.
type Viewport struct {
	Cx, Cy int
	Rx     int

	RowOff, ColOff int

	ScreenRows, ScreenCols int
}

// Scroll re-derives Rx from the current row and clamps the offsets so
// that Cy lands in [RowOff, RowOff+ScreenRows) and Rx in
// [ColOff, ColOff+ScreenCols). Runs once per frame, before rendering.
func (v *Viewport) Scroll(buf *buffer.TextBuffer) {
	v.Rx = 0
	if row := buf.Row(v.Cy); row != nil {
		v.Rx = row.CxToRx(v.Cx, buf.TabStop())
	}

	if v.Cy < v.RowOff {
		v.RowOff = v.Cy
	}
	if v.Cy >= v.RowOff+v.ScreenRows {
		v.RowOff = v.Cy - v.ScreenRows + 1
	}
	if v.Rx < v.ColOff {
		v.ColOff = v.Rx
	}
	if v.Rx >= v.ColOff+v.ScreenCols {
		v.ColOff = v.Rx - v.ScreenCols + 1
	}
}
