// Package settings provides the kvcheck settings: which keys are required,
// whether duplicate keys are rejected and how results are reported.
package settings

import (
	"fmt"
	"strings"

	"github.com/lerenn/kvcheck/configs"
	"github.com/lerenn/kvcheck/pkg/report"
	"gopkg.in/yaml.v3"
)

// Settings represents the kvcheck configuration.
type Settings struct {
	RequiredKeys []string      `yaml:"required_keys"`
	Strict       bool          `yaml:"strict"`
	Format       report.Format `yaml:"format"`
}

// Default returns the settings shipped with kvcheck.
func Default() Settings {
	s := Settings{
		RequiredKeys: []string{"name", "version"},
		Format:       report.FormatText,
	}

	var embedded Settings
	if err := yaml.Unmarshal(configs.DefaultSettingsYAML, &embedded); err == nil && embedded.Validate() == nil {
		s = embedded
	}

	return s
}

// Validate validates the settings values.
func (s Settings) Validate() error {
	for i, key := range s.RequiredKeys {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("%w: index %d", ErrRequiredKeyEmpty, i)
		}
		if key != strings.TrimSpace(key) {
			return fmt.Errorf("%w: %q", ErrRequiredKeyWhitespace, key)
		}
	}

	if err := s.Format.Validate(); err != nil {
		return err
	}

	return nil
}
