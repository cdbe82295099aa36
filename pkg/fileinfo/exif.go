package fileinfo

import (
	"os"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"fileinspect/pkg/sniff"
)

// HasEXIF reports whether files of type t can carry an EXIF block that
// ReadEXIF understands.
func HasEXIF(t *sniff.Type) bool {
	if t == nil {
		return false
	}
	switch t.MIME {
	case "image/jpeg", "image/tiff", "image/x-canon-cr2":
		return true
	}
	return false
}

// ReadEXIF returns EXIF tag names mapped to their values. Any failure
// (no EXIF block, unreadable file) yields nil.
func ReadEXIF(path string) map[string]string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return nil
	}
	out := make(map[string]string)
	_ = x.Walk(exifWalker{m: out})
	if len(out) == 0 {
		return nil
	}
	return out
}

type exifWalker struct{ m map[string]string }

func (w exifWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	w.m[string(name)] = strings.Trim(tag.String(), `"`)
	return nil
}
