package common

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

type WriteOptions struct {
	// Check makes WriteFile fail instead of writing when the file is
	// missing or its content differs; useful in CI.
	Check bool
}

// WriteFile writes generated output via a tmp file and rename, skipping
// the write entirely when the content is already up to date.
func WriteFile(path string, data []byte, opt WriteOptions) (wrote bool, err error) {
	existing, readErr := os.ReadFile(path)
	if readErr == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if readErr != nil && !os.IsNotExist(readErr) {
		return false, fmt.Errorf("read existing: %w", readErr)
	}

	if opt.Check {
		if readErr == nil {
			return false, fmt.Errorf("check failed: %s differs", path)
		}
		return false, fmt.Errorf("check failed: %s would be created", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("mkdir: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return false, fmt.Errorf("write tmp: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return false, fmt.Errorf("rename tmp: %w", err)
	}

	return true, nil
}
