package core

import (
	"context"

	"fileinspect/pkg/digest"
	"fileinspect/pkg/fileinfo"
	"fileinspect/pkg/sniff"
	"fileinspect/pkg/ui"
)

// Inspector runs the per-file phases: metadata, type detection, hashing.
// It holds no state across files.
type Inspector struct {
	EXIF     bool
	Progress ui.Progress
}

// Inspect builds the record for path. A metadata failure ends processing of
// the file; type or digest failures only blank their own fields. Cancelling
// ctx aborts hashing, which then shows up as a digest error.
func (i *Inspector) Inspect(ctx context.Context, path string) fileinfo.Record {
	rec := fileinfo.Record{Path: path}

	meta, err := fileinfo.ReadMetadata(path)
	if err != nil {
		rec.MetaErr = err
		return rec
	}
	rec.Size = meta.Size
	rec.ModifiedAt = meta.ModifiedAt

	typ, ok, err := sniff.File(path)
	switch {
	case err != nil:
		rec.TypeErr = err
	case ok:
		rec.Type = &typ
	}

	progress := i.Progress
	if progress == nil {
		progress = ui.NoopProgress{}
	}
	sum, err := digest.File(ctx, path, ui.Writer(progress))
	if err != nil {
		rec.DigestErr = err
	} else {
		rec.Digest = sum
	}

	if i.EXIF && fileinfo.HasEXIF(rec.Type) {
		rec.EXIF = fileinfo.ReadEXIF(path)
	}
	return rec
}
