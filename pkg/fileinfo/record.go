package fileinfo

import (
	"os"
	"time"

	"fileinspect/pkg/sniff"
)

// TimeLayout renders modification times with second precision.
const TimeLayout = "2006-01-02 15:04:05"

// Metadata is the stat result for one file.
type Metadata struct {
	Size       uint64
	ModifiedAt *time.Time
}

// Record holds everything learned about one file. A non-nil phase error
// means the corresponding fields are unset.
type Record struct {
	Path       string
	Size       uint64
	ModifiedAt *time.Time
	Type       *sniff.Type
	Digest     string
	EXIF       map[string]string

	MetaErr   error
	TypeErr   error
	DigestErr error
}

// ReadMetadata stats path. The modification time is converted to the
// host's local time; a zero time is reported as absent.
func ReadMetadata(path string) (Metadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Metadata{}, err
	}
	meta := Metadata{Size: uint64(info.Size())}
	if mod := info.ModTime(); !mod.IsZero() {
		local := mod.Local()
		meta.ModifiedAt = &local
	}
	return meta, nil
}

// FormatTime renders t as YYYY-MM-DD HH:MM:SS in local time.
func FormatTime(t time.Time) string {
	return t.Local().Format(TimeLayout)
}
