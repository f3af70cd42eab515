package terminal

// ByteSource delivers raw input bytes. ok is false when no byte arrived
// within the source's bounded wait; that is a normal condition, not an
// error, and must never block forever.
type ByteSource interface {
	ReadByte() (b byte, ok bool, err error)
}

type decoderState uint8

const (
	stateNormal     decoderState = iota
	stateEscape                  // ESC seen, awaiting introducer
	stateBracket                 // ESC [ seen
	stateBracketNum              // ESC [ digit seen, awaiting ~
	stateSS3                     // ESC O seen
)

// Decoder is a finite-state machine turning a stream of raw terminal
// bytes into logical keys.
type Decoder struct {
	src   ByteSource
	state decoderState
	num   byte // pending digit while in stateBracketNum
}

func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src}
}

// Next blocks until a full logical key is decoded or the source fails.
// A timeout inside an escape sequence resolves it to a literal Escape;
// a timeout between keys just keeps waiting.
func (d *Decoder) Next() (Key, error) {
	for {
		b, ok, err := d.src.ReadByte()
		if err != nil {
			d.state = stateNormal
			return 0, err
		}
		if !ok {
			if d.state != stateNormal {
				d.state = stateNormal
				return KeyEscape, nil
			}
			continue
		}
		if k, done := d.step(b); done {
			return k, nil
		}
	}
}

// step advances the state machine by one byte. done is false while a
// sequence is still incomplete.
func (d *Decoder) step(b byte) (k Key, done bool) {
	switch d.state {
	case stateNormal:
		if b == 0x1b {
			d.state = stateEscape
			return 0, false
		}
		return Key(b), true

	case stateEscape:
		switch b {
		case '[':
			d.state = stateBracket
			return 0, false
		case 'O':
			d.state = stateSS3
			return 0, false
		}
		d.state = stateNormal
		return KeyEscape, true

	case stateBracket:
		if b >= '0' && b <= '9' {
			d.num = b
			d.state = stateBracketNum
			return 0, false
		}
		d.state = stateNormal
		switch b {
		case 'A':
			return KeyUp, true
		case 'B':
			return KeyDown, true
		case 'C':
			return KeyRight, true
		case 'D':
			return KeyLeft, true
		case 'H':
			return KeyHome, true
		case 'F':
			return KeyEnd, true
		}
		return KeyEscape, true

	case stateBracketNum:
		num := d.num
		d.state = stateNormal
		if b != '~' {
			return KeyEscape, true
		}
		switch num {
		case '1', '7':
			return KeyHome, true
		case '3':
			return KeyDelete, true
		case '4', '8':
			return KeyEnd, true
		case '5':
			return KeyPageUp, true
		case '6':
			return KeyPageDown, true
		}
		return KeyEscape, true

	case stateSS3:
		d.state = stateNormal
		switch b {
		case 'H':
			return KeyHome, true
		case 'F':
			return KeyEnd, true
		}
		return KeyEscape, true
	}

	d.state = stateNormal
	return KeyEscape, true
}
