// Package kvconfig parses and validates KEY=VALUE configuration files.
package kvconfig

import "strings"

// Entry is a single key/value pair of a Config.
type Entry struct {
	Key   string
	Value string
}

// Config is a parsed configuration. Keys are unique and kept in the order
// they first appeared; a repeated key keeps its position and takes the
// latest value. A Config is never modified after Parse returns it.
type Config struct {
	keys   []string
	values map[string]string
}

// New creates an empty configuration.
func New() *Config {
	return &Config{values: make(map[string]string)}
}

func (c *Config) set(key, value string) {
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Get returns the value associated with key, if present.
func (c *Config) Get(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.values[key]
	return v, ok
}

// Has reports whether key is present.
func (c *Config) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Len returns the number of entries.
func (c *Config) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Keys returns the keys in insertion order.
func (c *Config) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Entries returns the key/value pairs in insertion order.
func (c *Config) Entries() []Entry {
	if c == nil {
		return nil
	}
	entries := make([]Entry, 0, len(c.keys))
	for _, k := range c.keys {
		entries = append(entries, Entry{Key: k, Value: c.values[k]})
	}
	return entries
}

// Map returns a copy of the underlying mapping.
func (c *Config) Map() map[string]string {
	m := make(map[string]string, c.Len())
	if c == nil {
		return m
	}
	for k, v := range c.values {
		m[k] = v
	}
	return m
}

// Equal reports whether both configurations hold the same mapping.
// Ordering is ignored.
func (c *Config) Equal(other *Config) bool {
	if c.Len() != other.Len() {
		return false
	}
	for _, k := range c.Keys() {
		v, ok := other.Get(k)
		if !ok || v != c.values[k] {
			return false
		}
	}
	return true
}

// String re-emits the configuration as KEY=VALUE lines.
func (c *Config) String() string {
	var b strings.Builder
	for _, e := range c.Entries() {
		b.WriteString(e.Key)
		b.WriteByte('=')
		b.WriteString(e.Value)
		b.WriteByte('\n')
	}
	return b.String()
}
