package terminal

import "strconv"

// The fixed VT100 subset used by the renderer. No capability
// negotiation happens beyond these sequences.
var (
	HideCursor  = []byte("\x1b[?25l")
	ShowCursor  = []byte("\x1b[?25h")
	CursorHome  = []byte("\x1b[H")
	ClearScreen = []byte("\x1b[2J")
	EraseLine   = []byte("\x1b[K")
	InvertOn    = []byte("\x1b[7m")
	InvertOff   = []byte("\x1b[m")
)

// AppendCursorPos appends the absolute positioning sequence for the
// 0-indexed cell (row, col) to dst and returns the extended slice. The
// wire format is 1-based.
func AppendCursorPos(dst []byte, row, col int) []byte {
	dst = append(dst, "\x1b["...)
	dst = strconv.AppendInt(dst, int64(row+1), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(col+1), 10)
	return append(dst, 'H')
}
