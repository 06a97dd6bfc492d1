package crust

import (
	"context"
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	oerrors "github.com/opmodel/crust/internal/errors"
	"github.com/opmodel/crust/internal/figlet"
	"github.com/opmodel/crust/internal/output"
)

// EOF marks the end of every generated file.
const EOF = "#EOF"

// MainLabel is the label of the entry point block.
const MainLabel = "main"

// Options controls document assembly.
type Options struct {
	// Blocks are the labels of the body blocks, in order.
	Blocks []string

	// Length is the number of blank lines requested per block.
	Length int

	Width int
	Tags  string
	Pad   int

	// Bar is repeated Width-1 times for the horizontal bar, so a
	// multi-character bar spans (Width-1)*len(Bar) columns.
	Bar string

	// Art renders block headers and the footer. Nil or disabled art
	// yields blank headers and a placeholder footer.
	Art *figlet.Renderer

	// HeaderProfile and FooterProfile select figlet fonts.
	HeaderProfile figlet.Profile
	FooterProfile figlet.Profile

	// Ego adds a module-level path variable bound to the file name.
	Ego bool

	// Main adds the entry point block.
	Main bool

	// Foot adds a figlet footer with the file name.
	Foot bool

	// Description is wrapped into the docstring when set.
	Description string

	Preset Preset
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Blocks:        []string{"setup", "helpers"},
		Length:        5,
		Width:         80,
		Tags:          "   ",
		Pad:           1,
		Bar:           "#",
		HeaderProfile: figlet.Standard,
		FooterProfile: figlet.Big,
		Main:          true,
		Preset:        PythonPreset(),
	}
}

// Dough assembles the full text of a file called name.
func Dough(ctx context.Context, name string, opts Options) (string, error) {
	if opts.Width < 2 {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("width must be at least 2, got %d", opts.Width), "width", "")
	}
	if opts.Bar == "" {
		opts.Bar = "#"
	}
	if opts.HeaderProfile == "" {
		opts.HeaderProfile = figlet.Standard
	}
	if opts.FooterProfile == "" {
		opts.FooterProfile = figlet.Big
	}
	preset := opts.Preset.WithDefaults()

	bar := strings.Repeat(opts.Bar, opts.Width-1) + "\n"

	parts := []string{preset.Hashbang, docstring(name, opts.Description, opts.Width), preset.Imports}

	if opts.Ego {
		parts = append(parts, fmt.Sprintf("from pathlib import Path\nego = Path(\"%s\")\n\n", name))
	}

	parts = append(parts, bar)

	for _, label := range opts.Blocks {
		block, err := Section(ctx, opts.section(label, Lines(opts.Length)))
		if err != nil {
			return "", err
		}
		parts = append(parts, block)
	}

	if opts.Main {
		block, err := Section(ctx, opts.section(MainLabel, Literal(preset.MainBody)))
		if err != nil {
			return "", err
		}
		parts = append(parts, block)
	}

	if opts.Foot {
		art := figlet.DefaultOptions()
		art.Profile = opts.FooterProfile
		art.Width = opts.Width
		footer, err := opts.Art.Render(ctx, name, art)
		if err != nil {
			return "", err
		}
		parts = append(parts, bar, footer, bar)
	}

	parts = append(parts, EOF)

	output.Debug("assembled crust",
		"name", name,
		"blocks", len(opts.Blocks),
		"figlet", opts.Art.Active())

	return Join(parts), nil
}

func (o Options) section(label string, body Body) SectionSpec {
	spec := DefaultSection(label)
	spec.Body = body
	spec.Width = o.Width
	spec.Tags = o.Tags
	spec.Pad = o.Pad
	spec.Bar = o.Bar
	spec.Art = o.Art
	spec.ArtOptions.Profile = o.HeaderProfile
	return spec
}

func docstring(name, description string, width int) string {
	if description == "" {
		return fmt.Sprintf("\"\"\"docstring for %s\"\"\"\n\n", name)
	}
	wrapped := wordwrap.String(strings.TrimSpace(description), width-1)
	return fmt.Sprintf("\"\"\"docstring for %s\n\n%s\n\"\"\"\n\n", name, wrapped)
}
