package kvconfig

// Validate checks that every required key is present. Keys are checked in
// the given order and only the first missing one is reported.
func Validate(config *Config, required []string) error {
	for _, key := range required {
		if !config.Has(key) {
			return newValidationError(key)
		}
	}
	return nil
}

// Validate checks that every required key is present in the configuration.
func (c *Config) Validate(required ...string) error {
	return Validate(c, required)
}
