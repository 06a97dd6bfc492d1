package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/crust/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		fields []string
	}{
		{"defaults", func(*Config) {}, nil},
		{"zero width", func(c *Config) { c.Width = 0 }, []string{"width"}},
		{"negative length", func(c *Config) { c.Length = -1 }, []string{"length"}},
		{"negative pad", func(c *Config) { c.Pad = -1 }, []string{"pad"}},
		{"empty bar", func(c *Config) { c.Bar = "" }, []string{"bar"}},
		{"suffix without dot", func(c *Config) { c.Preset.Suffix = "py" }, []string{"preset.suffix"}},
		{"unknown profiles", func(c *Config) {
			c.Figlet.HeaderProfile = "bgi"
			c.Figlet.FooterProfile = "slant"
		}, []string{"figlet.header_profile", "figlet.footer_profile"}},
		{"several at once", func(c *Config) {
			c.Width = -5
			c.Bar = ""
		}, []string{"width", "bar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			var got []string
			for _, e := range verrs {
				got = append(got, e.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestValidate_ProfileSuggestion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Figlet.FooterProfile = "bgi"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Did you mean "big"?`)
}

func TestDoughOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 60
	cfg.Tags = "<>"
	cfg.Blocks = []string{"io"}
	cfg.Figlet.HeaderProfile = "big"
	cfg.Preset.Hashbang = ""

	opts := cfg.DoughOptions()
	assert.Equal(t, 60, opts.Width)
	assert.Equal(t, "<>", opts.Tags)
	assert.Equal(t, []string{"io"}, opts.Blocks)
	assert.Equal(t, "big", string(opts.HeaderProfile))
	assert.Equal(t, "#!/usr/bin/env python3\n", opts.Preset.Hashbang)

	opts.Blocks[0] = "changed"
	assert.Equal(t, "io", cfg.Blocks[0], "options must not alias the config")
}
