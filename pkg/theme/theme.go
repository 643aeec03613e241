package theme

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme is a set of named design tokens.
type Theme struct {
	Name    string            `yaml:"name"`
	Colors  map[string]string `yaml:"colors"`
	Spacing map[string]string `yaml:"spacing"`
	Radius  map[string]string `yaml:"radius"`
	Font    Font              `yaml:"font"`
}

// Font describes the base font stack.
type Font struct {
	Family string `yaml:"family"`
	Size   string `yaml:"size"`
}

// Tokens every theme must define. Additional colors, spacing steps, and
// radii are allowed and rendered alongside.
var (
	requiredColors  = []string{"background", "text", "primary", "border"}
	requiredSpacing = []string{"sm", "md", "lg"}
)

// Parse decodes and validates theme tokens from YAML.
func Parse(data []byte) (*Theme, error) {
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.Join(ErrInvalidTheme, err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Load reads and parses a theme file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme file: %w", err)
	}
	return Parse(data)
}

// validate reports every missing required token at once.
func (t *Theme) validate() error {
	var missing []string

	for _, name := range requiredColors {
		if t.Colors[name] == "" {
			missing = append(missing, "colors."+name)
		}
	}
	for _, name := range requiredSpacing {
		if t.Spacing[name] == "" {
			missing = append(missing, "spacing."+name)
		}
	}
	if t.Font.Family == "" {
		missing = append(missing, "font.family")
	}
	if t.Font.Size == "" {
		missing = append(missing, "font.size")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingTokens, strings.Join(missing, ", "))
	}
	return nil
}

// CSS renders the tokens as a :root custom-property block. Token groups keep
// a fixed order and map keys are sorted, so the same theme always yields the
// same stylesheet text.
func (t *Theme) CSS() string {
	var b strings.Builder
	b.WriteString(":root{")
	b.WriteString("--font-family:")
	b.WriteString(t.Font.Family)
	b.WriteString(";--font-size:")
	b.WriteString(t.Font.Size)
	b.WriteByte(';')
	writeGroup(&b, "--color-", t.Colors)
	writeGroup(&b, "--spacing-", t.Spacing)
	writeGroup(&b, "--radius-", t.Radius)
	b.WriteByte('}')
	return b.String()
}

func writeGroup(b *strings.Builder, prefix string, tokens map[string]string) {
	for _, name := range slices.Sorted(maps.Keys(tokens)) {
		b.WriteString(prefix)
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(tokens[name])
		b.WriteByte(';')
	}
}
