package editor

import (
	"bytes"
	"fmt"

	"github.com/iw2rmb/quill/terminal"
)

// Refresh composes one full output frame and writes it to the sink in a
// single call, so the terminal never sees a partial frame.
func (s *Session) Refresh() error {
	s.view.Scroll(s.buf)

	var frame bytes.Buffer
	frame.Write(terminal.HideCursor)
	frame.Write(terminal.CursorHome)

	s.drawRows(&frame)
	s.drawStatusBar(&frame)
	s.drawMessageBar(&frame)

	frame.Write(terminal.AppendCursorPos(nil, s.view.Cy-s.view.RowOff, s.view.Rx-s.view.ColOff))
	frame.Write(terminal.ShowCursor)

	_, err := s.out.Write(frame.Bytes())
	return err
}

func (s *Session) drawRows(frame *bytes.Buffer) {
	for y := 0; y < s.view.ScreenRows; y++ {
		filerow := s.view.RowOff + y
		if row := s.buf.Row(filerow); row != nil {
			render := row.Render()
			start := s.view.ColOff
			if start > len(render) {
				start = len(render)
			}
			end := start + s.view.ScreenCols
			if end > len(render) {
				end = len(render)
			}
			frame.WriteString(render[start:end])
		} else if s.buf.NumRows() == 0 && y == s.view.ScreenRows/3 {
			s.drawWelcome(frame)
		} else {
			frame.WriteByte('~')
		}
		frame.Write(terminal.EraseLine)
		frame.WriteString("\r\n")
	}
}

func (s *Session) drawWelcome(frame *bytes.Buffer) {
	welcome := fmt.Sprintf("Quill editor -- version %s", s.cfg.Version)
	if len(welcome) > s.view.ScreenCols {
		welcome = welcome[:s.view.ScreenCols]
	}
	padding := (s.view.ScreenCols - len(welcome)) / 2
	if padding > 0 {
		frame.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		frame.WriteByte(' ')
	}
	frame.WriteString(welcome)
}

func (s *Session) drawStatusBar(frame *bytes.Buffer) {
	frame.Write(terminal.InvertOn)

	name := s.filename
	if name == "" {
		name = "[No Name]"
	}
	if len(name) > 20 {
		name = name[:20]
	}
	modified := ""
	if s.buf.Dirty() {
		modified = " (modified)"
	}
	left := fmt.Sprintf("%s - %d lines%s", name, s.buf.NumRows(), modified)
	right := fmt.Sprintf("%d/%d", s.view.Cy+1, s.buf.NumRows())

	if len(left) > s.view.ScreenCols {
		left = left[:s.view.ScreenCols]
	}
	frame.WriteString(left)
	for n := len(left); n < s.view.ScreenCols; n++ {
		if s.view.ScreenCols-n == len(right) {
			frame.WriteString(right)
			break
		}
		frame.WriteByte(' ')
	}

	frame.Write(terminal.InvertOff)
	frame.WriteString("\r\n")
}

func (s *Session) drawMessageBar(frame *bytes.Buffer) {
	frame.Write(terminal.EraseLine)
	msg := s.status.text
	if len(msg) > s.view.ScreenCols {
		msg = msg[:s.view.ScreenCols]
	}
	if msg != "" && s.now().Sub(s.status.when) < s.cfg.StatusExpiry {
		frame.WriteString(msg)
	}
}
