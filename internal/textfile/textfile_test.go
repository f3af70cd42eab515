package textfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadLines_StripsTerminators(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("one\r\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"one", "two", "three"}
	if len(lines) != len(want) {
		t.Fatalf("lines=%q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReadLines_VeryLongLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	long := strings.Repeat("x", 2<<20)
	if err := os.WriteFile(path, []byte(long+"\nshort\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("len(lines)=%d, want 2", len(lines))
	}
	if len(lines[0]) != len(long) {
		t.Fatalf("len(lines[0])=%d, want %d", len(lines[0]), len(long))
	}
}

func TestReadLines_NoTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("one\ntwo"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(lines) != 2 || lines[1] != "two" {
		t.Fatalf("lines=%q, want [one two]", lines)
	}
}

func TestReadLines_MissingFile(t *testing.T) {
	if _, err := ReadLines(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWrite_ReturnsByteCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	data := []byte("hello\nworld\n")

	n, err := Write(path, data)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != len(data) {
		t.Fatalf("n=%d, want %d", n, len(data))
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(data) {
		t.Fatalf("file=%q, want %q", got, data)
	}
}

func TestWrite_TruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if _, err := Write(path, []byte("a much longer first version\n")); err != nil {
		t.Fatal(err)
	}
	if _, err := Write(path, []byte("short\n")); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "short\n" {
		t.Fatalf("file=%q, want %q", got, "short\n")
	}
}
