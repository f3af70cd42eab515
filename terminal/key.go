package terminal

// Key is a logical key event. Plain input bytes map to themselves;
// named keys occupy code points above the byte range so they can never
// collide with literal input.
type Key int

const (
	KeyUp Key = 0x100 + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
)

const (
	KeyTab       Key = '\t'
	KeyEnter     Key = '\r'
	KeyEscape    Key = 0x1b
	KeyBackspace Key = 0x7f
)

// Ctrl returns the key produced by holding Ctrl with the given letter.
func Ctrl(c byte) Key { return Key(c & 0x1f) }

// Printable reports whether k is a literal byte the buffer can hold:
// a printable ASCII character or a tab.
func (k Key) Printable() bool {
	return (k >= 0x20 && k < 0x7f) || k == KeyTab
}
