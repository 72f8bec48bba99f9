package kvconfig

import "strings"

// ParseOpts contains optional parameters for Parse.
type ParseOpts struct {
	// Strict rejects a key that appears more than once.
	Strict bool
}

// Parse reads KEY=VALUE lines from content. Blank lines and lines starting
// with '#' are skipped. Only the first '=' splits key from value, and both
// are trimmed. Parsing stops at the first malformed line.
func Parse(content string, opts ...ParseOpts) (*Config, error) {
	var opt ParseOpts
	if len(opts) > 0 {
		opt = opts[0]
	}

	config := New()
	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, found := strings.Cut(trimmed, "=")
		if !found {
			return nil, newParseError(lineNum, ErrExpectedKeyValue, "")
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			return nil, newParseError(lineNum, ErrEmptyKey, "")
		}

		if opt.Strict && config.Has(key) {
			return nil, newParseError(lineNum, ErrDuplicateKey, key)
		}

		config.set(key, value)
	}

	return config, nil
}
