package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	defaultMaxSizeMB = 5
	logDirPerm       = 0o755
	logFilePerm      = 0o600
)

// rotatingFile is an append-only log file that moves itself to "<path>.1"
// once it grows past maxSize. Only one backup is kept.
type rotatingFile struct {
	mu      sync.Mutex
	path    string
	maxSize int64
	file    *os.File
	size    int64
}

func openRotatingFile(path string, maxSizeMB int) (*rotatingFile, error) {
	if maxSizeMB <= 0 {
		maxSizeMB = defaultMaxSizeMB
	}
	if err := os.MkdirAll(filepath.Dir(path), logDirPerm); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	r := &rotatingFile{
		path:    path,
		maxSize: int64(maxSizeMB) * 1024 * 1024,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *rotatingFile) open() error {
	if info, err := os.Stat(r.path); err == nil {
		r.size = info.Size()
	}

	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.file = file
	return nil
}

func (r *rotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *rotatingFile) rotate() error {
	if err := r.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close current log file: %v\n", err)
	}
	r.file = nil

	if err := os.Rename(r.path, r.path+".1"); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	r.size = 0
	return r.open()
}

func (r *rotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
