package markdown

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Option layouts for structured commands.
const (
	LayoutList  = "list"
	LayoutTable = "table"
)

// DefaultMaxDepth bounds how deep the renderer and table of contents follow
// the command tree. Matches the scanner's default recursion cap.
const DefaultMaxDepth = 5

// Config controls document rendering. Template files (TOML) override the
// defaults field by field; flags override the template. See [LoadConfig].
type Config struct {
	Title           string `toml:"title"`
	IncludeTOC      bool   `toml:"include_toc"`
	IncludeMetadata bool   `toml:"include_metadata"`
	ShowUsage       bool   `toml:"show_usage"`
	ShowEnvVars     bool   `toml:"show_env_vars"`
	MaxDepth        int    `toml:"max_depth"`
	OptionLayout    string `toml:"option_layout"`

	// RenderHeader replaces the default heading line for a command at the
	// given depth. RenderFooter appends trailing content to the document.
	// These are function values supplied by the caller in code; template
	// files cannot carry behavior.
	RenderHeader func(name string, depth int) string `toml:"-"`
	RenderFooter func() string                       `toml:"-"`
}

// DefaultConfig returns the rendering defaults for a CLI reference.
func DefaultConfig() Config {
	return Config{
		Title:           "CLI Reference",
		IncludeTOC:      true,
		IncludeMetadata: true,
		ShowUsage:       true,
		ShowEnvVars:     true,
		MaxDepth:        DefaultMaxDepth,
		OptionLayout:    LayoutList,
	}
}

// Validate reports configuration values no renderer accepts.
func (c Config) Validate() error {
	if c.OptionLayout != LayoutList && c.OptionLayout != LayoutTable {
		return fmt.Errorf("invalid option layout %q (want %q or %q)", c.OptionLayout, LayoutList, LayoutTable)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("max depth must be at least 1, got %d", c.MaxDepth)
	}
	return nil
}

// LoadConfig reads a TOML template file over the defaults. Keys absent from
// the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse template %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("template %s: %w", path, err)
	}
	return cfg, nil
}

// header renders the heading line for a command section.
func (c Config) header(name string, depth int) string {
	if c.RenderHeader != nil {
		return c.RenderHeader(name, depth)
	}
	return strings.Repeat("#", depth+1) + " " + name
}
