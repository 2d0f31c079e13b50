// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Data source types
const (
	SourceCSV      = "csv"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

const (
	DefaultPort    = 5000
	DefaultDataDir = "Data"
)

type Config struct {
	Port        int
	SourceType  string
	DataDir     string
	DatabaseURL string
	StaticDir   string
	ImportCSV   bool
}

// LoadEnvFile loads variables from a .env style file without overriding
// variables already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags parses CLI flags, falling back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quorum-summary", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.SourceType, "t", "", "Data source type (csv, sqlite or postgres)")
	fs.StringVar(&cfg.DataDir, "data", "", "Directory holding the CSV files")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite and postgres sources)")
	fs.StringVar(&cfg.StaticDir, "static", "", "Directory of static frontend files")
	fs.BoolVar(&cfg.ImportCSV, "import", false, "Import the CSV data directory into the database and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.SourceType == "" {
		cfg.SourceType = os.Getenv("DATA_SOURCE")
		if cfg.SourceType == "" {
			cfg.SourceType = SourceCSV
		}
	}
	switch cfg.SourceType {
	case SourceCSV, SourceSQLite, SourcePostgres:
	default:
		return Config{}, fmt.Errorf("unknown data source %q (use csv, sqlite or postgres)", cfg.SourceType)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = os.Getenv("DATA_DIR")
		if cfg.DataDir == "" {
			cfg.DataDir = DefaultDataDir
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.SourceType != SourceCSV && cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required for " + cfg.SourceType + " source (use -d or DATABASE_URL env)")
	}

	if cfg.StaticDir == "" {
		cfg.StaticDir = os.Getenv("STATIC_DIR")
	}

	if cfg.ImportCSV && cfg.SourceType == SourceCSV {
		return Config{}, errors.New("-import requires a sqlite or postgres source")
	}

	return cfg, nil
}
