package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultFileMode os.FileMode = 0644

// WriteFileAtomic writes data to a temporary file next to path and renames
// it into place, so readers never see a partially written file. A zero perm
// keeps the mode of the file being replaced, or 0644 for a new file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if perm == 0 {
		perm = existingMode(path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := fillTemp(tmp, data, perm); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := replace(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

func existingMode(path string) os.FileMode {
	if st, err := os.Stat(path); err == nil && st.Mode().IsRegular() {
		return st.Mode().Perm()
	}
	return defaultFileMode
}

// fillTemp writes and flushes data, always closing tmp
func fillTemp(tmp *os.File, data []byte, perm os.FileMode) error {
	// chmod is unsupported on some filesystems; the write still counts
	_ = tmp.Chmod(perm)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	return nil
}

// replace renames src over dst. Windows refuses to rename onto an existing
// file, so dst is removed and the rename retried once.
func replace(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	_ = os.Remove(dst)
	if os.Rename(src, dst) != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
