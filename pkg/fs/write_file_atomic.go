package fs

import (
	"os"
	"path/filepath"
)

func (f *realFS) WriteFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err = tmpFile.Close(); err != nil {
		return err
	}

	if err = os.Chmod(tmpPath, perm); err != nil {
		return err
	}

	return os.Rename(tmpPath, filename)
}
