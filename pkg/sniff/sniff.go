package sniff

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// PrefixSize bounds how much of a file is read for type detection.
const PrefixSize = 8192

// Type is a detected content type.
type Type struct {
	MIME      string
	Extension string
}

func (t Type) String() string {
	return fmt.Sprintf("%s (%s)", t.MIME, t.Extension)
}

// Match classifies buf against the signature table. Only the first
// PrefixSize bytes are considered.
func Match(buf []byte) (Type, bool) {
	if len(buf) > PrefixSize {
		buf = buf[:PrefixSize]
	}
	for _, s := range signatures {
		if s.matches(buf) {
			return Type{MIME: s.mime, Extension: s.ext}, true
		}
	}
	return Type{}, false
}

func (s signature) matches(buf []byte) bool {
	for _, p := range s.parts {
		end := p.offset + len(p.magic)
		if end > len(buf) || !bytes.Equal(buf[p.offset:end], p.magic) {
			return false
		}
	}
	return len(s.parts) > 0
}

// ReadPrefix reads min(size, PrefixSize) bytes from r, requesting no more
// than that. A reader that ends early yields what was available.
func ReadPrefix(r io.Reader, size int64) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}
	if size > PrefixSize {
		size = PrefixSize
	}
	buf := make([]byte, size)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:n], nil
}

// File sniffs the content type of the file at path from its own handle.
func File(path string) (Type, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return Type{}, false, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Type{}, false, err
	}
	buf, err := ReadPrefix(f, info.Size())
	if err != nil {
		return Type{}, false, err
	}
	t, ok := Match(buf)
	return t, ok, nil
}
