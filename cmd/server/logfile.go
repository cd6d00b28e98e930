package main

import (
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Log files are trimmed to their newest keepLogSizeBytes once they exceed
// maxLogSizeBytes.
const (
	maxLogSizeBytes  = 6 * 1024 * 1024
	keepLogSizeBytes = 5 * 1024 * 1024
)

type logFileWriter struct {
	file *os.File
	mu   sync.Mutex
	max  int64
	keep int64
}

func newLogFileWriter(path string) (*logFileWriter, *os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	w := &logFileWriter{file: file, max: maxLogSizeBytes, keep: keepLogSizeBytes}
	if err := w.trim(); err != nil {
		file.Close()
		return nil, nil, err
	}
	return w, file, nil
}

func (w *logFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	n, err := w.file.Write(p)
	if err != nil {
		return n, err
	}
	return n, w.trim()
}

// trim keeps the tail of the file once it grows past max.
func (w *logFileWriter) trim() error {
	info, err := w.file.Stat()
	if err != nil {
		return err
	}
	size := info.Size()
	if size <= w.max {
		return nil
	}

	buf := make([]byte, w.keep)
	n, err := w.file.ReadAt(buf, size-w.keep)
	if err != nil && err != io.EOF {
		return err
	}
	if err := w.file.Truncate(0); err != nil {
		return err
	}
	// O_APPEND places this write at the new end of file, offset 0.
	_, err = w.file.Write(buf[:n])
	return err
}
