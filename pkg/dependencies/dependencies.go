// Package dependencies provides a centralized dependency container for kvcheck.
package dependencies

import (
	"errors"

	"github.com/lerenn/kvcheck/pkg/fs"
	"github.com/lerenn/kvcheck/pkg/logger"
	"github.com/lerenn/kvcheck/pkg/settings"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing       = errors.New("fs dependency is required but not set")
	ErrLoggerMissing   = errors.New("logger dependency is required but not set")
	ErrSettingsMissing = errors.New("settings dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS       fs.FS
	Logger   logger.Logger
	Settings settings.Manager
}

// New creates a new Dependencies instance with defaults. Settings is left
// nil as it depends on the settings path chosen by the caller.
func New() *Dependencies {
	return &Dependencies{
		FS:     fs.NewFS(),
		Logger: logger.NewNoopLogger(),
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithSettings sets the settings manager and returns the instance for chaining.
func (d *Dependencies) WithSettings(s settings.Manager) *Dependencies {
	d.Settings = s
	return d
}

type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns the
// error of the first missing one.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Settings, ErrSettingsMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
