package util

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

var ErrFileExists = errors.New("file already exists")

// WriteFileAtomic writes data to path, creating missing parent directories.
// Readers of path either see the old or the new content, never a partial write.
// Unless overwrite is set, an existing file is left untouched and ErrFileExists is returned.
func WriteFileAtomic(path string, data []byte, overwrite bool) error {
	if !overwrite && FileExists(path) {
		return fmt.Errorf("%w: %s", ErrFileExists, path)
	}

	parentDir := filepath.Dir(path)
	if err := os.MkdirAll(parentDir, 0755); err != nil {
		return err
	}

	return atomic.WriteFile(path, bytes.NewReader(data))
}

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
