package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/voicenotes/internal/infrastructure/watcher"
	"github.com/johnquangdev/voicenotes/internal/usecase/pipeline"
)

var watchCmd = &cobra.Command{
	Use:   "watch <inbox-dir>",
	Short: "Process audio files as they are dropped into a directory",
	Long: `Watch a directory and run the pipeline on every new .wav, .mp3 or .m4a
file, one file at a time. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if info, err := os.Stat(args[0]); err != nil || !info.IsDir() {
		return fmt.Errorf("not a directory: %s", args[0])
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.closer()

	w, err := watcher.New(args[0], pipeline.SupportedExtensions, func(ctx context.Context, path string) error {
		written, err := a.processFile(ctx, path)
		if err != nil {
			return err
		}
		for _, p := range written {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	}, logger)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
