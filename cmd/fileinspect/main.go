package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"fileinspect/pkg/core"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// The first signal cancels the scan; restoring default handling lets a
	// second one kill a process stuck in a read.
	context.AfterFunc(ctx, stop)

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fileinspect: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg core.Config

	cmd := &cobra.Command{
		Use:   "fileinspect <file_or_dir>",
		Short: "Report size, modification time, content type and SHA-256 for every file in a tree",
		Long: `fileinspect walks a file or directory and prints one record per regular
file: size, last modification time (local), content type sniffed from the
first 8 KiB, and the SHA-256 of the full content.

Symbolic links are not followed. Files that cannot be read are reported on
stderr and the walk continues; the exit status is 0 unless the command line
is invalid.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg.Root = args[0]
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return core.Run(ctx, &cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringArrayVar(&cfg.Excludes, "exclude", nil, "glob of paths to skip, matched against the relative path and base name; repeatable")
	cmd.Flags().StringVar(&cfg.IgnoreFile, "ignore-file", "", "gitignore-style file of paths to skip")
	cmd.Flags().IntVarP(&cfg.Workers, "workers", "w", 1, "files inspected concurrently; output order is unchanged")
	cmd.Flags().BoolVar(&cfg.EXIF, "exif", false, "append EXIF tags for JPEG and TIFF files")
	cmd.Flags().BoolVar(&cfg.Progress, "progress", false, "show a progress bar on stderr")
	cmd.Flags().StringVar(&cfg.LogFile, "log-file", "", "also write diagnostics to this file")
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", "info", "diagnostic level: debug / info / warn / error")
	return cmd
}
