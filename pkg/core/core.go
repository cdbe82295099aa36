package core

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/stream"

	"fileinspect/pkg/fileinfo"
	"fileinspect/pkg/logging"
	"fileinspect/pkg/report"
	"fileinspect/pkg/ui"
	"fileinspect/pkg/walker"
)

// Run inspects every file under cfg.Root. Records go to stdout, diagnostics
// to stderr. Per-file failures never make Run fail; only setup errors and
// cancellation do.
func Run(ctx context.Context, cfg *Config, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var progress ui.Progress = ui.NoopProgress{}
	outWriter, errWriter := stdout, stderr
	if cfg.Progress {
		bar := ui.NewBarProgress(stderr)
		progress = bar
		outWriter = bar.WrapWriter(stdout)
		errWriter = bar.WrapWriter(stderr)
	}

	logWriters := []io.Writer{errWriter}
	if cfg.LogFile != "" {
		file, err := os.Create(cfg.LogFile)
		if err != nil {
			return fmt.Errorf("create log file: %w", err)
		}
		logWriters = append(logWriters, file)
	}
	logger, err := logging.New(cfg.LogLevel, logWriters...)
	if err != nil {
		return err
	}
	defer logger.Close()
	log := logger.With("run", uuid.NewString())

	w, err := walker.New(walker.Options{
		Excludes:   cfg.Excludes,
		IgnoreFile: cfg.IgnoreFile,
		Logger:     log,
	})
	if err != nil {
		return err
	}
	inspector := &Inspector{EXIF: cfg.EXIF, Progress: progress}
	reporter := report.New(outWriter, log)

	log.Debug("scan started", "root", cfg.Root, "workers", cfg.Workers)
	progress.Start()

	emit := func(rec fileinfo.Record) {
		if err := reporter.Emit(rec); err != nil {
			log.Error("failed to write record", "path", rec.Path, "err", err)
		}
		progress.NextFile(rec.Path)
	}

	var runErr error
	if cfg.Workers == 1 {
		runErr = inspectSequential(ctx, w.Files(cfg.Root), inspector, emit)
	} else {
		runErr = inspectParallel(ctx, w.Files(cfg.Root), cfg.Workers, inspector, emit)
	}
	progress.Finish()

	if runErr != nil {
		log.Warn("scan interrupted", "root", cfg.Root, "err", runErr)
		return runErr
	}
	log.Debug("scan finished", "root", cfg.Root)
	return nil
}

// inspectSequential finishes each file, record and diagnostics included,
// before the walk moves on.
func inspectSequential(ctx context.Context, files iter.Seq[string], inspector *Inspector, emit func(fileinfo.Record)) error {
	for path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec := inspector.Inspect(ctx, path)
		if err := ctx.Err(); err != nil {
			return err
		}
		emit(rec)
	}
	return nil
}

// inspectParallel inspects up to workers files at once. Stream callbacks run
// one at a time in submission order, so records keep the walk order.
func inspectParallel(ctx context.Context, files iter.Seq[string], workers int, inspector *Inspector, emit func(fileinfo.Record)) error {
	s := stream.New().WithMaxGoroutines(workers)
	for path := range files {
		if ctx.Err() != nil {
			break
		}
		s.Go(func() stream.Callback {
			rec := inspector.Inspect(ctx, path)
			return func() {
				if ctx.Err() != nil {
					return
				}
				emit(rec)
			}
		})
	}
	s.Wait()
	return ctx.Err()
}
