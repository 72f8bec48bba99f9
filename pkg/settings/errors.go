package settings

import "errors"

// Error definitions for settings package.
var (
	// Settings file errors.
	ErrSettingsNotFound  = errors.New("settings file not found. Run 'kvcheck init' to create it")
	ErrSettingsFileParse = errors.New("failed to parse settings file")
	ErrSettingsExist     = errors.New("settings file already exists")

	// Settings validation errors.
	ErrRequiredKeyEmpty      = errors.New("required key cannot be empty")
	ErrRequiredKeyWhitespace = errors.New("required key cannot have surrounding whitespace")
)
