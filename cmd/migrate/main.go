package main

import (
	"fmt"
	"log"
	"os"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"

	"github.com/johnquangdev/voicenotes/internal/infrastructure/database"
	"github.com/johnquangdev/voicenotes/pkg/config"
)

var (
	migrationsDir string
	steps         int
)

var rootCmd = &cobra.Command{
	Use:   "migrate [up|down]",
	Short: "Apply or roll back the run history schema",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMigrate,
}

func init() {
	rootCmd.Flags().StringVar(&migrationsDir, "dir", database.MigrationsDir, "directory holding sql-migrate files")
	rootCmd.Flags().IntVar(&steps, "steps", 0, "maximum migrations to apply (0 = all; down defaults to 1)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	direction := migrate.Up
	if len(args) == 1 {
		switch args[0] {
		case "up":
		case "down":
			direction = migrate.Down
			if steps == 0 {
				steps = 1
			}
		default:
			return fmt.Errorf("unknown direction %q (want up or down)", args[0])
		}
	}

	cfg, err := config.LoadUnvalidated()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.Database.Enabled = true

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		return err
	}
	defer database.CloseDB(db)

	log.Printf("🔄 Applying migrations from %s/ ...", migrationsDir)

	n, err := database.Migrate(db, migrationsDir, direction, steps)
	if err != nil {
		return err
	}

	log.Printf("✅ Successfully applied %d migration(s)!", n)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
