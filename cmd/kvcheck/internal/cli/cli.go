// Package cli provides common configuration and utility functions for the kvcheck CLI.
package cli

import (
	"github.com/lerenn/kvcheck/pkg/checker"
	"github.com/lerenn/kvcheck/pkg/dependencies"
	"github.com/lerenn/kvcheck/pkg/fs"
	"github.com/lerenn/kvcheck/pkg/logger"
	"github.com/lerenn/kvcheck/pkg/settings"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// SettingsPath specifies a custom settings file path.
	SettingsPath string
)

// NewSettingsManager creates a new settings Manager for the selected path.
func NewSettingsManager() settings.Manager {
	return settings.NewManager(fs.NewFS(), SettingsPath)
}

// NewChecker creates a new Checker wired with the default dependencies.
func NewChecker() (checker.Checker, error) {
	c, err := checker.NewChecker(checker.NewCheckerParams{
		Dependencies: dependencies.New().
			WithSettings(NewSettingsManager()),
	})
	if err != nil {
		return nil, err
	}

	if Verbose {
		c.SetLogger(logger.NewVerboseLogger())
	}

	return c, nil
}
