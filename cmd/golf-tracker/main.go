// Package main runs the golf tracker: a local REST API over the round
// log, statistics engine and course catalog.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jeichenberger88/golf-tracker/internal/api"
	"github.com/jeichenberger88/golf-tracker/internal/config"
	"github.com/jeichenberger88/golf-tracker/internal/courses"
	"github.com/jeichenberger88/golf-tracker/internal/importer"
	"github.com/jeichenberger88/golf-tracker/internal/storage"
)

var (
	port      = flag.Int("port", 0, "API server port (overrides config)")
	dbPath    = flag.String("db-path", "", "Database path (default: ~/.golf-tracker/rounds.db)")
	importDir = flag.String("import-dir", "", "Directory to watch for round files (overrides config)")
	backup    = flag.Bool("backup", false, "Take a database backup and exit")
	restore   = flag.String("restore", "", "Restore the database from a backup file and exit")
)

func main() {
	flag.Parse()

	fmt.Println("Golf Tracker")
	fmt.Println("============")
	fmt.Println()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *importDir != "" {
		cfg.Import.Enabled = true
		cfg.Import.Dir = *importDir
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Setup database path
	finalDBPath := cfg.Database.Path
	if finalDBPath == "" {
		finalDBPath, err = config.DefaultDatabasePath()
		if err != nil {
			log.Fatalf("Failed to resolve database path: %v", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(finalDBPath), 0o755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}
	fmt.Printf("Database: %s\n", finalDBPath)

	if *backup || *restore != "" {
		bm := storage.NewBackupManager(finalDBPath)
		if *restore != "" {
			if err := bm.Restore(*restore); err != nil {
				log.Fatalf("Restore failed: %v", err)
			}
			fmt.Println("Database restored.")
			return
		}
		backupPath, err := bm.Backup()
		if err != nil {
			log.Fatalf("Backup failed: %v", err)
		}
		fmt.Printf("Backup written to %s\n", backupPath)
		return
	}

	// Open database
	dbConfig := storage.DefaultConfig(finalDBPath)
	dbConfig.AutoMigrate = true
	db, err := storage.Open(dbConfig)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	service := storage.NewService(db)
	defer func() {
		if err := service.Close(); err != nil {
			log.Printf("Error closing storage service: %v", err)
		}
	}()

	// Course catalog: built-in courses plus the remote catalog when a
	// credential is configured.
	providers := []courses.Provider{courses.NewStaticProvider()}
	if cfg.Catalog.APIKey != "" && cfg.Catalog.BaseURL != "" {
		timeout, err := cfg.GetCatalogTimeout()
		if err != nil {
			log.Fatalf("Invalid catalog timeout: %v", err)
		}
		providers = append(providers, courses.NewRemoteClient(cfg.Catalog.BaseURL, cfg.Catalog.APIKey, timeout))
	}
	catalog := courses.NewCatalog(providers...)

	server := api.NewServer(&api.Config{Port: cfg.Server.Port}, service, catalog)
	if err := server.Start(); err != nil {
		log.Fatalf("Failed to start API server: %v", err)
	}

	// Round file importer
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Import.Enabled {
		watcher := importer.New(cfg.Import.Dir, service, 0)
		go func() {
			if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
				log.Printf("Importer stopped: %v", err)
			}
		}()
	}

	fmt.Println()
	fmt.Printf("API server running at http://localhost:%d\n", cfg.Server.Port)
	fmt.Println("Press Ctrl+C to stop")
	fmt.Println()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	fmt.Println()
	fmt.Println("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	fmt.Println("Stopped.")
}
