package main

import (
	"fmt"
	"log"
	"os"

	"github.com/iw2rmb/quill"
	"github.com/iw2rmb/quill/editor"
	"github.com/iw2rmb/quill/terminal"
)

func main() {
	log.SetFlags(0)

	var path string
	switch len(os.Args) {
	case 1:
	case 2:
		path = os.Args[1]
	default:
		log.Fatalf("usage: %s [file]", os.Args[0])
	}

	if err := run(path); err != nil {
		log.Fatal(err)
	}
}

func run(path string) error {
	t, err := terminal.Open()
	if err != nil {
		return err
	}
	defer t.Restore()

	if err := edit(t, path); err != nil {
		// Leave a clean screen behind the diagnostic.
		t.Write(terminal.ClearScreen)
		t.Write(terminal.CursorHome)
		return err
	}
	return nil
}

func edit(t *terminal.Terminal, path string) error {
	rows, cols, err := t.Size()
	if err != nil {
		return fmt.Errorf("getting window size: %w", err)
	}

	s := editor.New(editor.Config{
		Rows:    rows,
		Cols:    cols,
		Version: quill.Version(),
	}, t, t)

	if path != "" {
		if err := s.Open(path); err != nil {
			return err
		}
	}
	s.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	return s.Run()
}
