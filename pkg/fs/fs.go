// Package fs provides the file system operations used to read configuration
// files and manage the kvcheck settings file.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=fs.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides file system operations.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// ReadFile reads the whole content of a file.
	ReadFile(path string) ([]byte, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// GetHomeDir returns the user's home directory path.
	GetHomeDir() (string, error)

	// ExpandPath expands a leading ~ to the user's home directory.
	ExpandPath(path string) (string, error)

	// WriteFileAtomic writes data to a file through a temporary file and rename.
	WriteFileAtomic(filename string, data []byte, perm os.FileMode) error
}

type realFS struct{}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}

func (f *realFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (f *realFS) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (f *realFS) ReadFile(path string) ([]byte, error) {
	isDir, err := f.IsDir(path)
	if err == nil && isDir {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	return os.ReadFile(path)
}

func (f *realFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (f *realFS) GetHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (f *realFS) ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := f.GetHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHomeDir, err)
	}

	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
