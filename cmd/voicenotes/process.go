package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var processCmd = &cobra.Command{
	Use:   "process <audio-file>",
	Short: "Process one audio file (.wav, .mp3, .m4a)",
	Long: `Transcribe an audio file and write transcript.txt, report.txt,
AI_Report.pdf and AI_Report.docx under <out>/<audio name>/.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(args[0]); err != nil {
		return fmt.Errorf("file not found: %s", args[0])
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.closer()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	written, err := a.processFile(ctx, args[0])
	if err != nil {
		return err
	}

	for _, path := range written {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}
