// Package configs provides embedded configuration files for kvcheck.
package configs

import _ "embed"

// DefaultSettingsYAML contains the default settings file content.
//
//go:embed default.yaml
var DefaultSettingsYAML []byte
