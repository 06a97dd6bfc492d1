// Package config provides configuration loading and management.
package config

import (
	"github.com/opmodel/crust/internal/crust"
	"github.com/opmodel/crust/internal/figlet"
)

// FigletConfig contains settings for the figlet renderer.
type FigletConfig struct {
	// Path is the figlet executable, looked up in PATH when not absolute.
	// Env: CRUST_FIGLET_PATH, Default: "figlet"
	Path string `yaml:"path" mapstructure:"path"`

	// HeaderProfile is the profile used for block headers.
	// Env: CRUST_FIGLET_HEADER_PROFILE, Default: "std"
	HeaderProfile string `yaml:"header_profile" mapstructure:"header_profile"`

	// FooterProfile is the profile used for the file name footer.
	// Env: CRUST_FIGLET_FOOTER_PROFILE, Default: "big"
	FooterProfile string `yaml:"footer_profile" mapstructure:"footer_profile"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: off. Override with --timestamps flag.
	Timestamps *bool `yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the crust configuration.
// Loaded from ~/.crust/config.yaml.
type Config struct {
	// Width is the column budget of bars. Env: CRUST_WIDTH
	Width int `yaml:"width" mapstructure:"width"`

	// Length is the number of blank lines requested per block.
	Length int `yaml:"length" mapstructure:"length"`

	Pad  int    `yaml:"pad" mapstructure:"pad"`
	Tags string `yaml:"tags" mapstructure:"tags"`
	Bar  string `yaml:"bar" mapstructure:"bar"`

	// Blocks are used when no block names are given on the command line.
	// Env: CRUST_BLOCKS (comma separated)
	Blocks []string `yaml:"blocks" mapstructure:"blocks"`

	Figlet FigletConfig `yaml:"figlet" mapstructure:"figlet"`

	// Preset overrides the fixed text of generated files.
	Preset crust.Preset `yaml:"preset" mapstructure:"preset"`

	Log LogConfig `yaml:"log,omitempty" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `crust config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Width:  80,
		Length: 5,
		Pad:    1,
		Tags:   "    ",
		Bar:    "#",
		Blocks: []string{"setup", "helpers"},
		Figlet: FigletConfig{
			Path:          "figlet",
			HeaderProfile: string(figlet.Standard),
			FooterProfile: string(figlet.Big),
		},
		Preset: crust.PythonPreset(),
	}
}

// DoughOptions converts the configuration into assembly options. Profiles
// must already be validated.
func (c *Config) DoughOptions() crust.Options {
	opts := crust.DefaultOptions()
	opts.Width = c.Width
	opts.Length = c.Length
	opts.Pad = c.Pad
	opts.Tags = c.Tags
	opts.Bar = c.Bar
	opts.Blocks = append([]string(nil), c.Blocks...)
	opts.HeaderProfile = figlet.Profile(c.Figlet.HeaderProfile)
	opts.FooterProfile = figlet.Profile(c.Figlet.FooterProfile)
	opts.Preset = c.Preset.WithDefaults()
	return opts
}
