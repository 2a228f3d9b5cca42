package database

import (
	"fmt"
	"log"
	"time"

	migrate "github.com/rubenv/sql-migrate"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/voicenotes/pkg/config"
)

// MigrationsDir holds the sql-migrate files for the run history schema
const MigrationsDir = "migrations"

// NewPostgresDB opens the run history database with GORM
func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	if !cfg.Database.Enabled {
		return nil, fmt.Errorf("database is disabled (DB_ENABLED=false)")
	}

	gormLogger := logger.Default.LogMode(logger.Warn)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("✅ Database connected successfully")

	return db, nil
}

// Migrate applies (up) or rolls back (down) migrations from dir.
// max limits the number of steps; 0 means all.
func Migrate(db *gorm.DB, dir string, direction migrate.MigrationDirection, max int) (int, error) {
	if dir == "" {
		dir = MigrationsDir
	}
	source := &migrate.FileMigrationSource{Dir: dir}

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate: %w", err)
	}

	n, err := migrate.ExecMax(sqlDB, "postgres", source, direction, max)
	if err != nil {
		return n, fmt.Errorf("failed to apply migration: %w", err)
	}
	return n, nil
}

// AutoMigrate applies every pending migration from MigrationsDir
func AutoMigrate(db *gorm.DB) error {
	log.Println("🔄 Applying migrations from migrations/ using sql-migrate...")

	n, err := Migrate(db, MigrationsDir, migrate.Up, 0)
	if err != nil {
		return err
	}

	log.Printf("✅ Applied %d migrations!\n", n)
	return nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Println("✅ Database connection closed")
	return nil
}
