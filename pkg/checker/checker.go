// Package checker runs the read, parse and validate pipeline on a
// configuration file.
package checker

import (
	"fmt"
	"unicode/utf8"

	"github.com/lerenn/kvcheck/pkg/dependencies"
	"github.com/lerenn/kvcheck/pkg/kvconfig"
	"github.com/lerenn/kvcheck/pkg/logger"
	"github.com/lerenn/kvcheck/pkg/report"
	"github.com/lerenn/kvcheck/pkg/settings"
)

// Checker interface provides configuration file checking.
type Checker interface {
	// Check reads, parses and validates the configuration file at path.
	Check(path string, opts ...CheckOpts) (*Result, error)
	// SetLogger sets the logger for this Checker instance.
	SetLogger(logger logger.Logger)
}

// CheckOpts contains optional parameters for Check. Zero values keep what
// the settings file says.
type CheckOpts struct {
	// RequiredKeys replaces the settings required keys when not nil.
	RequiredKeys []string
	// Strict rejects duplicate keys even if the settings do not.
	Strict bool
	// Format replaces the settings output format when not empty.
	Format report.Format
}

// Result is the outcome of a successful check.
type Result struct {
	Path         string
	Config       *kvconfig.Config
	RequiredKeys []string
	Format       report.Format
}

// NewCheckerParams contains parameters for creating a new Checker instance.
type NewCheckerParams struct {
	Dependencies *dependencies.Dependencies
}

type realChecker struct {
	deps *dependencies.Dependencies
}

// NewChecker creates a new Checker instance.
func NewChecker(params NewCheckerParams) (Checker, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	if err := deps.Validate(); err != nil {
		return nil, err
	}

	return &realChecker{
		deps: deps,
	}, nil
}

// SetLogger sets the logger for this Checker instance.
func (c *realChecker) SetLogger(logger logger.Logger) {
	c.deps.Logger = logger
}

// VerbosePrint logs a formatted message using the current logger.
func (c *realChecker) VerbosePrint(msg string, args ...interface{}) {
	if c.deps.Logger != nil {
		c.deps.Logger.Logf(msg, args...)
	}
}

func (c *realChecker) Check(path string, opts ...CheckOpts) (*Result, error) {
	var opt CheckOpts
	if len(opts) > 0 {
		opt = opts[0]
	}

	s, err := c.resolveSettings(opt)
	if err != nil {
		return nil, err
	}

	c.VerbosePrint("Reading configuration file %s", path)
	data, err := c.deps.FS.ReadFile(path)
	if err != nil {
		return nil, kvconfig.NewIOError(path, err)
	}
	if !utf8.Valid(data) {
		return nil, kvconfig.NewIOError(path, ErrInvalidUTF8)
	}

	c.VerbosePrint("Parsing %d bytes (strict=%t)", len(data), s.Strict)
	config, err := kvconfig.Parse(string(data), kvconfig.ParseOpts{Strict: s.Strict})
	if err != nil {
		return nil, err
	}
	c.VerbosePrint("Parsed %d entries", config.Len())

	c.VerbosePrint("Validating required keys %v", s.RequiredKeys)
	if err := config.Validate(s.RequiredKeys...); err != nil {
		return nil, err
	}

	return &Result{
		Path:         path,
		Config:       config,
		RequiredKeys: s.RequiredKeys,
		Format:       s.Format,
	}, nil
}

// resolveSettings merges the settings file with the given options.
func (c *realChecker) resolveSettings(opt CheckOpts) (settings.Settings, error) {
	s, err := c.deps.Settings.GetSettingsWithFallback()
	if err != nil {
		return settings.Settings{}, fmt.Errorf("%w: %w", ErrLoadSettings, err)
	}

	if opt.RequiredKeys != nil {
		s.RequiredKeys = opt.RequiredKeys
	}
	if opt.Strict {
		s.Strict = true
	}
	if opt.Format != "" {
		s.Format = opt.Format
	}
	if s.Format == "" {
		s.Format = report.FormatText
	}

	if err := s.Validate(); err != nil {
		return settings.Settings{}, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return s, nil
}
