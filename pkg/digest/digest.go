package digest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// Algorithm is the only digest the inspector produces.
const Algorithm = "SHA256"

// HexLen is the length of an encoded digest.
const HexLen = sha256.Size * 2

const bufSize = 1 << 20 // 1 MiB

// Sum streams r through SHA-256 in bufSize chunks. Every chunk is also
// written to tap when it is non-nil. Cancelling ctx stops the copy at the
// next chunk boundary.
func Sum(ctx context.Context, r io.Reader, tap io.Writer) (string, error) {
	h := sha256.New()
	var w io.Writer = h
	if tap != nil {
		w = io.MultiWriter(h, tap)
	}
	buf := make([]byte, bufSize)
	// ctxReader does not implement io.WriterTo, so CopyBuffer keeps buf.
	if _, err := io.CopyBuffer(w, ctxReader{ctx: ctx, r: r}, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// File hashes the full content of path, opening its own handle.
func File(ctx context.Context, path string, tap io.Writer) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Sum(ctx, f, tap)
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
