// Package filestore writes files with a backup of the previous version.
//
// The ini engine itself only serializes; this package supplies the
// durability around it. Writes go to a temporary file in the target
// directory which is then renamed into place, and the file being replaced is
// first renamed to its backup name.
package filestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// BackupInfix is inserted before a file's extension to name its backup.
const BackupInfix = ".backup"

// DefaultMode is used for files that did not exist before.
const DefaultMode fs.FileMode = 0o644

// ErrNoBackup is returned by Restore when there is nothing to restore.
var ErrNoBackup = errors.New("filestore: no backup")

// Writer provides atomic file replacement.
type Writer struct {
	// Optional: custom temp directory for atomic writes
	tempDir string
}

// NewWriter creates a new writer with default settings.
func NewWriter() *Writer {
	return &Writer{}
}

// SetTempDir sets a directory for temporary files. It must be on the same
// filesystem as the targets. By default the target's own directory is used.
func (w *Writer) SetTempDir(dir string) {
	w.tempDir = dir
}

// BackupPath returns the backup name for path: "Morrowind.ini" becomes
// "Morrowind.backup.ini", "config" becomes "config.backup".
func BackupPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + BackupInfix + ext
}

// WriteAtomic writes data to path using temp-file-then-rename.
//
// Steps:
//  1. Create temporary file next to the target
//  2. Write and fsync it
//  3. Rename it over the target
//  4. Fsync the parent directory
//
// If any step before the rename fails, the temp file is removed and the
// target is left as it was.
func (w *Writer) WriteAtomic(path string, data []byte) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving absolute path: %w", err)
	}

	mode := DefaultMode
	if info, statErr := os.Stat(absPath); statErr == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(absPath)
	tmpDir := dir
	if w.tempDir != "" {
		tmpDir = w.tempDir
	}

	tmpFile, err := os.CreateTemp(tmpDir, ".numidium-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	cleanup := func() {
		tmpFile.Close()
		os.Remove(tmpPath)
	}

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		cleanup()
		return fmt.Errorf("writing to temp file: %w", writeErr)
	}

	if chmodErr := tmpFile.Chmod(mode); chmodErr != nil {
		cleanup()
		return fmt.Errorf("setting file mode: %w", chmodErr)
	}

	if syncErr := tmpFile.Sync(); syncErr != nil {
		cleanup()
		return fmt.Errorf("syncing temp file: %w", syncErr)
	}

	// Close before rename (required on Windows)
	if closeErr := tmpFile.Close(); closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if renameErr := os.Rename(tmpPath, absPath); renameErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", renameErr)
	}

	// The data is in place; a failed directory sync only weakens durability.
	_ = syncDir(dir)

	return nil
}

// Backup renames path to its backup name, replacing any older backup.
// It returns the backup path, or "" if path does not exist.
func (w *Writer) Backup(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	backupPath := BackupPath(path)
	if err := os.Remove(backupPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("removing old backup: %w", err)
	}
	if err := os.Rename(path, backupPath); err != nil {
		return "", fmt.Errorf("creating backup: %w", err)
	}
	return backupPath, nil
}

// Replace writes data to path. When backup is set the existing file is first
// moved to its backup name; if the write then fails the backup is moved
// back. It returns the backup path, or "" if none was made.
func (w *Writer) Replace(path string, data []byte, backup bool) (string, error) {
	if !backup {
		return "", w.WriteAtomic(path, data)
	}

	backupPath, err := w.Backup(path)
	if err != nil {
		return "", err
	}
	if writeErr := w.WriteAtomic(path, data); writeErr != nil {
		if backupPath != "" {
			_ = os.Rename(backupPath, path)
		}
		return "", writeErr
	}
	return backupPath, nil
}

// Restore atomically replaces path with the contents of its backup. The
// backup itself is kept.
func (w *Writer) Restore(path string) error {
	backupPath := BackupPath(path)
	data, err := os.ReadFile(backupPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNoBackup, backupPath)
		}
		return fmt.Errorf("reading backup file: %w", err)
	}

	if writeErr := w.WriteAtomic(path, data); writeErr != nil {
		return fmt.Errorf("restoring from backup: %w", writeErr)
	}
	return nil
}

// HasBackup reports whether a backup exists for path.
func HasBackup(path string) bool {
	info, err := os.Stat(BackupPath(path))
	return err == nil && info.Mode().IsRegular()
}

// syncDir fsyncs a directory to ensure metadata changes are persisted.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("opening directory: %w", err)
	}
	defer d.Close()

	if syncErr := d.Sync(); syncErr != nil {
		return fmt.Errorf("syncing directory: %w", syncErr)
	}

	return nil
}
