package walker

import (
	"errors"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrUnsupportedRoot is reported when the root is neither a regular file
// nor a directory.
var ErrUnsupportedRoot = errors.New("path is neither a regular file nor a directory")

// Options configures a Walker.
type Options struct {
	// Excludes are glob patterns matched against the slash-separated path
	// relative to the root, and against the base name.
	Excludes []string
	// IgnoreFile is an optional gitignore-style file.
	IgnoreFile string
	Logger     *slog.Logger
}

// Walker enumerates regular files below a root. Symbolic links are never
// followed.
type Walker struct {
	match  *matcher
	logger *slog.Logger
}

// New builds a Walker. A malformed exclude pattern or an unreadable ignore
// file is an error.
func New(opts Options) (*Walker, error) {
	m, err := newMatcher(opts.Excludes, opts.IgnoreFile)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Walker{match: m, logger: logger}, nil
}

// Files returns the regular files reachable from root in lexical
// depth-first order. Each call starts a fresh walk.
func (w *Walker) Files(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		info, err := os.Lstat(root)
		if err != nil {
			w.logger.Warn("path not found", "path", root, "err", err)
			return
		}
		switch {
		case info.Mode().IsRegular():
			yield(root)
			return
		case info.IsDir():
		default:
			w.logger.Warn("skipping root", "path", root, "err", ErrUnsupportedRoot)
			return
		}

		_ = filepath.WalkDir(root, func(fullPath string, entry fs.DirEntry, err error) error {
			if err != nil {
				w.logger.Warn("skipping unreadable entry", "path", fullPath, "err", err)
				if entry != nil && entry.IsDir() && fullPath != root {
					return fs.SkipDir
				}
				return nil
			}
			if fullPath == root {
				return nil
			}
			rel, err := filepath.Rel(root, fullPath)
			if err != nil {
				return nil
			}
			if entry.IsDir() {
				if w.match.excluded(rel, true) {
					w.logger.Debug("excluded directory", "path", fullPath)
					return fs.SkipDir
				}
				return nil
			}
			if !entry.Type().IsRegular() {
				w.logger.Debug("skipping non-regular entry", "path", fullPath, "mode", entry.Type().String())
				return nil
			}
			if w.match.excluded(rel, false) {
				w.logger.Debug("excluded file", "path", fullPath)
				return nil
			}
			if !yield(fullPath) {
				return fs.SkipAll
			}
			return nil
		})
	}
}
