package settings

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/lerenn/kvcheck/configs"
	"github.com/lerenn/kvcheck/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// DefaultPath is the settings location used when none is given.
const DefaultPath = "~/.kvcheck/settings.yaml"

// Manager interface provides settings management with an embedded settings path.
type Manager interface {
	// GetSettings loads the settings file, failing if it is missing.
	GetSettings() (Settings, error)
	// GetSettingsWithFallback loads the settings file, falling back to the
	// defaults if it is missing.
	GetSettingsWithFallback() (Settings, error)
	// SaveDefaultSettings writes the default settings file.
	SaveDefaultSettings(force bool) error
	// GetSettingsPath returns the settings path with ~ expanded.
	GetSettingsPath() (string, error)
}

type realManager struct {
	fs   fs.FS
	path string
}

// NewManager creates a new Manager for the given settings path.
// An empty path selects DefaultPath.
func NewManager(fsys fs.FS, path string) Manager {
	if path == "" {
		path = DefaultPath
	}
	return &realManager{
		fs:   fsys,
		path: path,
	}
}

func (m *realManager) GetSettingsPath() (string, error) {
	return m.fs.ExpandPath(m.path)
}

func (m *realManager) GetSettings() (Settings, error) {
	path, err := m.GetSettingsPath()
	if err != nil {
		return Settings{}, err
	}

	exists, err := m.fs.Exists(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to check settings file: %w", err)
	}
	if !exists {
		return Settings{}, fmt.Errorf("%w: %s", ErrSettingsNotFound, path)
	}

	data, err := m.fs.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}

	// Keys absent from the file keep their default value.
	settings := Default()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrSettingsFileParse, err)
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}

	return settings, nil
}

func (m *realManager) GetSettingsWithFallback() (Settings, error) {
	settings, err := m.GetSettings()
	if errors.Is(err, ErrSettingsNotFound) {
		return Default(), nil
	}
	return settings, err
}

func (m *realManager) SaveDefaultSettings(force bool) error {
	path, err := m.GetSettingsPath()
	if err != nil {
		return err
	}

	exists, err := m.fs.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check settings file: %w", err)
	}
	if exists && !force {
		return fmt.Errorf("%w: %s", ErrSettingsExist, path)
	}

	if err := m.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := m.fs.WriteFileAtomic(path, configs.DefaultSettingsYAML, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
