package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/voicenotes/pkg/config"
	pkglogger "github.com/johnquangdev/voicenotes/pkg/logger"
)

var (
	verbose   bool
	modelFlag string
	outDir    string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "voicenotes",
	Short: "Turn lecture audio into study notes, flashcards and quizzes",
	Long: `voicenotes transcribes an audio file and derives a summary, keywords,
structured and smart notes, flashcards and a multiple-choice quiz, then
exports everything as a combined PDF and DOCX report.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		if outDir == "" {
			outDir = cfg.Pipeline.OutputDir
		}
		logger, err = pkglogger.New(cfg)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "fast", "speech model size: fast or balanced")
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "", "output directory (default: PIPELINE_OUTPUT_DIR)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
