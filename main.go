// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quorum-summary/cliparse"
	"github.com/danielhkuo/quorum-summary/db"
	"github.com/danielhkuo/quorum-summary/middleware"
	"github.com/danielhkuo/quorum-summary/records"
	"github.com/danielhkuo/quorum-summary/router"
)

const loadTimeout = 30 * time.Second

func main() {
	var err error

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	if cfg.ImportCSV {
		if err := importCSV(ctx, cfg); err != nil {
			slog.Error("import failed", "error", err)
			os.Exit(1)
		}
		return
	}

	var source records.Source = records.NewCSVSource(cfg.DataDir)
	if cfg.SourceType != cliparse.SourceCSV {
		dbConn, err := openDB(cfg)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()
		source = records.NewSQLSource(dbConn)
	}

	// Load everything up front; nothing is served from a partial load
	snap, err := source.Load(ctx)
	if err != nil {
		slog.Error("data load failed", "source", cfg.SourceType, "error", err)
		os.Exit(1)
	}
	stats := snap.Stats()
	slog.Info("Data loaded",
		"source", cfg.SourceType,
		"legislators", stats.Legislators,
		"bills", stats.Bills,
		"votes", stats.Votes,
		"vote_results", stats.VoteResults,
	)

	// Create router
	mux := router.NewRouter(snap, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openDB connects to the configured database and makes sure the schema exists
func openDB(cfg cliparse.Config) (*sql.DB, error) {
	driver := "postgres"
	if cfg.SourceType == cliparse.SourceSQLite {
		driver = "sqlite"
	}

	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" {
		dbConn.SetMaxOpenConns(1)
	}

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		dbConn.Close()
		return nil, err
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		dbConn.Close()
		return nil, err
	}
	slog.Info("Database schema ready", "driver", driver)

	return dbConn, nil
}

// importCSV copies the CSV files in cfg.DataDir into the configured database
func importCSV(ctx context.Context, cfg cliparse.Config) error {
	snap, err := records.NewCSVSource(cfg.DataDir).Load(ctx)
	if err != nil {
		return err
	}

	dbConn, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.Import(ctx, dbConn, snap); err != nil {
		return err
	}

	stats := snap.Stats()
	slog.Info("Import complete",
		"dir", cfg.DataDir,
		"legislators", stats.Legislators,
		"bills", stats.Bills,
		"votes", stats.Votes,
		"vote_results", stats.VoteResults,
	)
	return nil
}
