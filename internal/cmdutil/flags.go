// Package cmdutil provides shared command utilities: flag groups that map
// onto configuration keys and error reporting for the command layer.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/crust/internal/config"
)

// LayoutFlags holds the flags that shape every block. Each one overrides
// the matching config key only when it was set on the command line.
type LayoutFlags struct {
	Width  int
	Length int
	Pad    int
	Tags   string
	Bar    string
}

// layoutKeys maps flag names to config keys.
var layoutKeys = []struct{ flag, key string }{
	{"width", "width"},
	{"len", "length"},
	{"pad", "pad"},
	{"tags", "tags"},
	{"bar", "bar"},
}

// AddTo registers the layout flags on the given cobra command.
func (f *LayoutFlags) AddTo(cmd *cobra.Command) {
	def := config.DefaultConfig()
	cmd.Flags().IntVarP(&f.Width, "width", "w", def.Width,
		"Column width of the bars (env: CRUST_WIDTH)")
	cmd.Flags().IntVarP(&f.Length, "len", "l", def.Length,
		"Blank lines per block (env: CRUST_LENGTH)")
	cmd.Flags().IntVarP(&f.Pad, "pad", "p", def.Pad,
		"Spaces around each label (env: CRUST_PAD)")
	cmd.Flags().StringVarP(&f.Tags, "tags", "t", def.Tags,
		"Up to four characters framing each label (env: CRUST_TAGS)")
	cmd.Flags().StringVarP(&f.Bar, "bar", "b", def.Bar,
		"Fill string of the bars (env: CRUST_BAR)")
}

// ApplyTo copies explicitly set flags onto cfg and returns where each
// layout value came from.
func (f *LayoutFlags) ApplyTo(cmd *cobra.Command, cfg *config.Config, loader *config.Loader) []config.ResolvedValue {
	changed := cmd.Flags().Changed
	if changed("width") {
		cfg.Width = f.Width
	}
	if changed("len") {
		cfg.Length = f.Length
	}
	if changed("pad") {
		cfg.Pad = f.Pad
	}
	if changed("tags") {
		cfg.Tags = f.Tags
	}
	if changed("bar") {
		cfg.Bar = f.Bar
	}

	values := map[string]any{
		"width":  cfg.Width,
		"length": cfg.Length,
		"pad":    cfg.Pad,
		"tags":   cfg.Tags,
		"bar":    cfg.Bar,
	}

	resolved := make([]config.ResolvedValue, 0, len(layoutKeys))
	for _, k := range layoutKeys {
		source := config.SourceDefault
		switch {
		case changed(k.flag):
			source = config.SourceFlag
		case loader != nil:
			source = loader.Source(k.key)
		}
		resolved = append(resolved, config.ResolvedValue{Key: k.key, Value: values[k.key], Source: source})
	}
	return resolved
}

// SectionFlags selects the optional parts of the document.
type SectionFlags struct {
	Figlet bool
	Ego    bool
	Main   bool
	Foot   bool
	All    bool
}

// AddTo registers the section flags on the given cobra command.
func (f *SectionFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.Figlet, "figlet", "f", false,
		"Render block headers with figlet")
	cmd.Flags().BoolVarP(&f.Ego, "ego", "e", false,
		"Add a Path variable bound to the file name")
	cmd.Flags().BoolVarP(&f.Main, "main", "m", false,
		"Add the main block")
	cmd.Flags().BoolVarP(&f.Foot, "foot", "o", false,
		"Add a figlet footer with the file name")
	cmd.Flags().BoolVarP(&f.All, "all", "A", false,
		"Same as -f -e -m -o")
}

// Resolve expands --all into the individual switches.
func (f SectionFlags) Resolve() SectionFlags {
	if f.All {
		f.Figlet, f.Ego, f.Main, f.Foot = true, true, true, true
	}
	return f
}
