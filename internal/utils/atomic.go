package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrEmptyPath is returned by [WriteFileAtomic] for an empty path.
var ErrEmptyPath = errors.New("path is empty")

// WriteFileAtomic replaces the file at path with data. The data is written
// to a hidden temporary file next to path, synced and renamed over path, so
// a reader sees either the old or the new content. Missing parent
// directories are created.
//
// Example usage:
//
//	err := utils.WriteFileAtomic(cfg.WalletFile, data, 0o600)
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	tmpPath, err := writeTempFile(dir, filepath.Base(path), data, perm)
	if err != nil {
		return err
	}

	if err = os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("error replacing %s: %w", filepath.Base(path), err)
	}

	// rename durability, best effort
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	return nil
}

// writeTempFile writes data to a new file in dir and returns its path. The
// file is removed on any error.
func writeTempFile(dir, base string, data []byte, perm os.FileMode) (tmpPath string, err error) {
	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("error creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if _, err = f.Write(data); err != nil {
		return "", fmt.Errorf("error writing temp file: %w", err)
	}
	if err = f.Chmod(perm); err != nil {
		return "", fmt.Errorf("error setting temp file permissions: %w", err)
	}
	if err = f.Sync(); err != nil {
		return "", fmt.Errorf("error syncing temp file: %w", err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("error closing temp file: %w", err)
	}

	return f.Name(), nil
}
