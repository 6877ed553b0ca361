// Package config loads the dumper's TOML configuration file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// DefaultTransparentKinds are the framework scaffolding kinds collapsed
// out of the exported tree when no configuration overrides them. They
// are pure pass-through containers that carry no geometry or data of
// their own.
var DefaultTransparentKinds = []string{
	"androidx.compose.ui.layout.Layout",
	"androidx.compose.runtime.ReusableContent",
	"androidx.compose.runtime.CompositionLocalProvider",
}

// Config controls tree normalization and document metadata.
type Config struct {
	// TransparentKinds replaces the default transparent set entirely.
	TransparentKinds []string `toml:"transparent_kinds"`

	// ExtraTransparentKinds extends the set without replacing it.
	ExtraTransparentKinds []string `toml:"extra_transparent_kinds"`

	// ProcessName and Note override the values recorded in the capture.
	ProcessName string `toml:"process_name"`
	Note        string `toml:"note"`

	// MaxPropertyDepth bounds property-group nesting (0 = engine default).
	MaxPropertyDepth int `toml:"max_property_depth"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{TransparentKinds: append([]string(nil), DefaultTransparentKinds...)}
}

// Load reads a TOML config file, starting from Default for any field the
// file leaves unset.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Kinds returns the effective transparent kind list: the base set plus
// any extras.
func (c Config) Kinds() []string {
	kinds := append([]string(nil), c.TransparentKinds...)
	return append(kinds, c.ExtraTransparentKinds...)
}
