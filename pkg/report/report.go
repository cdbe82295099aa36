package report

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"fileinspect/pkg/digest"
	"fileinspect/pkg/fileinfo"
)

// Writer prints one record per file to out and one diagnostic per failed
// phase to the logger. It is not safe for concurrent use; callers serialize.
type Writer struct {
	out    io.Writer
	logger *slog.Logger
}

// New creates a Writer.
func New(out io.Writer, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Writer{out: out, logger: logger}
}

// Emit writes rec as a single block and reports its failures.
func (w *Writer) Emit(rec fileinfo.Record) error {
	_, err := io.WriteString(w.out, Format(rec))
	w.diagnose(rec)
	return err
}

func (w *Writer) diagnose(rec fileinfo.Record) {
	if rec.MetaErr != nil {
		w.logger.Error("failed to read metadata", "path", rec.Path, "err", rec.MetaErr)
		return
	}
	if rec.TypeErr != nil {
		w.logger.Error("failed to detect type", "path", rec.Path, "err", rec.TypeErr)
	}
	if rec.DigestErr != nil {
		w.logger.Error("failed to hash file", "path", rec.Path, "err", rec.DigestErr)
	}
}

// Format renders rec in the fixed line order: separator, path, size,
// modification time, detected type, digest. Lines of failed phases are left
// out; a metadata failure ends the record after the path.
func Format(rec fileinfo.Record) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "File: %s\n", strconv.Quote(rec.Path))
	if rec.MetaErr != nil {
		return b.String()
	}
	fmt.Fprintf(&b, "Size: %d bytes\n", rec.Size)
	if rec.ModifiedAt != nil {
		fmt.Fprintf(&b, "Last Modified: %s\n", fileinfo.FormatTime(*rec.ModifiedAt))
	}
	if rec.TypeErr == nil {
		if rec.Type != nil {
			fmt.Fprintf(&b, "Detected Type: %s\n", rec.Type)
		} else {
			b.WriteString("Detected Type: Unknown\n")
		}
	}
	if rec.DigestErr == nil && rec.Digest != "" {
		fmt.Fprintf(&b, "%s: %s\n", digest.Algorithm, rec.Digest)
	}
	if len(rec.EXIF) > 0 {
		keys := make([]string, 0, len(rec.EXIF))
		for k := range rec.EXIF {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "EXIF %s: %s\n", k, rec.EXIF[k])
		}
	}
	return b.String()
}
