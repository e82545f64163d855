package logging

import (
	"fmt"
	"os"
)

// Rotation limits the growth of a log file that is appended to across runs.
type Rotation struct {
	// MaxSizeMB is the size in megabytes at which the file is rotated before
	// it is opened. Zero disables rotation.
	MaxSizeMB int
	// MaxBackups is the number of rotated files kept as path.1 (newest)
	// through path.N (oldest).
	MaxBackups int
}

// rotate moves path aside when it has grown past the limit. Backups beyond
// MaxBackups are removed.
func (r Rotation) rotate(path string) error {
	if r.MaxSizeMB <= 0 {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	if info.Size() < int64(r.MaxSizeMB)*1024*1024 {
		return nil
	}

	if r.MaxBackups <= 0 {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove log file: %w", err)
		}
		return nil
	}

	_ = os.Remove(backupPath(path, r.MaxBackups))
	for i := r.MaxBackups - 1; i >= 1; i-- {
		if _, err := os.Stat(backupPath(path, i)); err == nil {
			_ = os.Rename(backupPath(path, i), backupPath(path, i+1))
		}
	}
	if err := os.Rename(path, backupPath(path, 1)); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	return nil
}

func backupPath(path string, n int) string {
	return fmt.Sprintf("%s.%d", path, n)
}
