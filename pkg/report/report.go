// Package report renders a validated configuration.
package report

import (
	"fmt"
	"io"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/lerenn/kvcheck/pkg/kvconfig"
	"gopkg.in/yaml.v3"
)

// Format selects how a configuration is rendered.
type Format string

// Supported formats.
const (
	FormatText   Format = "text"
	FormatKV     Format = "kv"
	FormatYAML   Format = "yaml"
	FormatDotenv Format = "dotenv"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatKV, FormatYAML, FormatDotenv}
}

// Validate reports whether the format is supported. The empty format
// stands for FormatText.
func (f Format) Validate() error {
	if f == "" {
		return nil
	}
	for _, known := range Formats() {
		if f == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Write renders config to w in the given format.
func Write(w io.Writer, config *kvconfig.Config, format Format) error {
	if err := format.Validate(); err != nil {
		return err
	}

	switch format {
	case FormatKV:
		_, err := io.WriteString(w, config.String())
		return err
	case FormatYAML:
		return writeYAML(w, config)
	case FormatDotenv:
		return writeDotenv(w, config)
	default:
		return writeText(w, config)
	}
}

func writeText(w io.Writer, config *kvconfig.Config) error {
	header := lipgloss.NewRenderer(w).NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("42"))

	if _, err := fmt.Fprintln(w, header.Render("✅ Configuration valid!")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\nParsed %d entries:\n", config.Len()); err != nil {
		return err
	}
	for _, e := range config.Entries() {
		if _, err := fmt.Fprintf(w, "  %s = %s\n", e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, config *kvconfig.Config) error {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range config.Entries() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Value},
		)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return enc.Close()
}

// dotenvKey matches the keys dotenv loaders accept.
var dotenvKey = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func writeDotenv(w io.Writer, config *kvconfig.Config) error {
	for _, key := range config.Keys() {
		if !dotenvKey.MatchString(key) {
			return fmt.Errorf("%w: %w: %q", ErrRender, ErrDotenvKey, key)
		}
	}

	values := config.Map()
	content, err := godotenv.Marshal(values)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}

	// Marshal writes integer-looking values unquoted, which loses
	// leading zeros and signs.
	loaded, err := godotenv.Unmarshal(content)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	for key, value := range values {
		if loaded[key] != value {
			return fmt.Errorf("%w: %w: %s=%q", ErrRender, ErrDotenvValue, key, value)
		}
	}

	if content == "" {
		return nil
	}
	_, err = fmt.Fprintln(w, content)
	return err
}
