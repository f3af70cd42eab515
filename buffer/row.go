package buffer

// Row is one logical line. chars is the authoritative content; render
// is its tab-expanded form and must be regenerated before any read of
// rendered content that follows a mutation of chars.
type Row struct {
	chars  []byte
	render []byte
}

func newRow(chars []byte, tabStop int) *Row {
	r := &Row{chars: chars}
	r.update(tabStop)
	return r
}

// update regenerates render from chars, expanding each tab with spaces
// up to the next multiple of tabStop.
func (r *Row) update(tabStop int) {
	tabs := 0
	for _, c := range r.chars {
		if c == '\t' {
			tabs++
		}
	}
	out := make([]byte, 0, len(r.chars)+tabs*(tabStop-1))
	for _, c := range r.chars {
		if c == '\t' {
			out = append(out, ' ')
			for len(out)%tabStop != 0 {
				out = append(out, ' ')
			}
			continue
		}
		out = append(out, c)
	}
	r.render = out
}

// Len returns the raw content length in bytes.
func (r *Row) Len() int { return len(r.chars) }

// Chars returns the raw line content.
func (r *Row) Chars() string { return string(r.chars) }

// Render returns the tab-expanded line content.
func (r *Row) Render() string { return string(r.render) }

// RenderLen returns the tab-expanded content length.
func (r *Row) RenderLen() int { return len(r.render) }

// CxToRx converts buffer column cx to the render column it occupies
// after tab expansion. Monotonic in cx.
func (r *Row) CxToRx(cx, tabStop int) int {
	rx := 0
	for j := 0; j < cx && j < len(r.chars); j++ {
		if r.chars[j] == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// RxToCx is the inverse of CxToRx: the buffer column whose accumulated
// render column first exceeds rx, or the row length when none does.
func (r *Row) RxToCx(rx, tabStop int) int {
	cur := 0
	for cx := 0; cx < len(r.chars); cx++ {
		if r.chars[cx] == '\t' {
			cur += (tabStop - 1) - (cur % tabStop)
		}
		cur++
		if cur > rx {
			return cx
		}
	}
	return len(r.chars)
}
