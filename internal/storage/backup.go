package storage

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// BackupManager handles backup and restore of the rounds database.
type BackupManager struct {
	dbPath string
}

// NewBackupManager creates a backup manager for the given database
// path.
func NewBackupManager(dbPath string) *BackupManager {
	return &BackupManager{dbPath: dbPath}
}

// BackupDir returns the directory backups are written to, a "backups"
// subdirectory next to the database.
func (bm *BackupManager) BackupDir() string {
	return filepath.Join(filepath.Dir(bm.dbPath), "backups")
}

// Backup writes a verified copy of the database and returns its path.
// VACUUM INTO produces a consistent snapshot without taking an
// exclusive lock, so backups are safe while the server is running.
func (bm *BackupManager) Backup() (string, error) {
	backupDir := bm.BackupDir()
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := fmt.Sprintf("rounds_%s.db", time.Now().Format("20060102_150405"))
	backupPath := filepath.Join(backupDir, name)

	sourceDB, err := sql.Open("sqlite", bm.dbPath)
	if err != nil {
		return "", fmt.Errorf("failed to open source database: %w", err)
	}
	defer sourceDB.Close()

	if _, err := sourceDB.Exec(fmt.Sprintf("VACUUM INTO %q", backupPath)); err != nil {
		return "", fmt.Errorf("failed to back up database: %w", err)
	}

	if err := bm.Verify(backupPath); err != nil {
		_ = os.Remove(backupPath)
		return "", fmt.Errorf("backup verification failed: %w", err)
	}

	return backupPath, nil
}

// Restore replaces the database with a backup. The current database is
// kept next to it with a timestamped .old suffix. The caller must have
// closed all connections first.
func (bm *BackupManager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if err := bm.Verify(backupPath); err != nil {
		return fmt.Errorf("backup verification failed: %w", err)
	}

	tempPath := bm.dbPath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to stage restore: %w", err)
	}

	if _, err := os.Stat(bm.dbPath); err == nil {
		oldPath := bm.dbPath + ".old." + time.Now().Format("20060102_150405")
		if err := os.Rename(bm.dbPath, oldPath); err != nil {
			_ = os.Remove(tempPath)
			return fmt.Errorf("failed to set aside current database: %w", err)
		}
	}

	if err := os.Rename(tempPath, bm.dbPath); err != nil {
		return fmt.Errorf("failed to replace database: %w", err)
	}
	return nil
}

// Verify checks that a backup file is a readable SQLite database.
func (bm *BackupManager) Verify(backupPath string) error {
	db, err := sql.Open("sqlite", backupPath)
	if err != nil {
		return fmt.Errorf("failed to open backup as database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping backup database: %w", err)
	}

	var version string
	if err := db.QueryRow("SELECT sqlite_version()").Scan(&version); err != nil {
		return fmt.Errorf("failed to query backup database: %w", err)
	}
	return nil
}

// BackupInfo describes one backup file.
type BackupInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// ListBackups returns the backup files in the backup directory, oldest
// first.
func (bm *BackupManager) ListBackups() ([]BackupInfo, error) {
	backupDir := bm.BackupDir()
	if _, err := os.Stat(backupDir); os.IsNotExist(err) {
		return []BackupInfo{}, nil
	}

	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".db" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Path:    filepath.Join(backupDir, entry.Name()),
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return backups, nil
}

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return err
	}
	defer source.Close()

	dest, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(dest, source); err != nil {
		dest.Close()
		_ = os.Remove(dst)
		return err
	}
	return dest.Close()
}
