package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/opmodel/crust/internal/cmdutil"
	"github.com/opmodel/crust/internal/config"
	"github.com/opmodel/crust/internal/crust"
	oerrors "github.com/opmodel/crust/internal/errors"
	"github.com/opmodel/crust/internal/figlet"
	"github.com/opmodel/crust/internal/output"
	"github.com/opmodel/crust/internal/target"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// generateFlags holds the flags of the root command that are not layout or
// section switches.
type generateFlags struct {
	Force       bool
	Description string
	Stdout      bool
	Copy        bool
}

// AddTo registers the generate flags on the given cobra command.
func (f *generateFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.Force, "force", "r", false,
		"Replace an existing file without asking")
	cmd.Flags().StringVarP(&f.Description, "description", "d", "",
		"Text wrapped into the module docstring")
	cmd.Flags().BoolVar(&f.Stdout, "stdout", false,
		"Print the document instead of writing it")
	cmd.Flags().BoolVar(&f.Copy, "copy", false,
		"Also copy the document to the clipboard")
}

func runGenerate(cmd *cobra.Command, args []string, gen generateFlags, layout *cmdutil.LayoutFlags, sections cmdutil.SectionFlags) error {
	if len(args) == 0 {
		return cmdutil.PrintError(cmd.ErrOrStderr(), oerrors.NewValidationError(
			"missing file name", "file", "Usage: crust [flags] <file> [block...]"))
	}

	cfg, err := currentConfig()
	if err != nil {
		return cmdutil.PrintError(cmd.ErrOrStderr(), err)
	}

	resolved := layout.ApplyTo(cmd, cfg, configLoader)
	if err := config.Validate(cfg); err != nil {
		return cmdutil.PrintError(cmd.ErrOrStderr(), err)
	}
	config.LogResolvedValues(resolved)

	name := target.Name(args[0])
	path := args[0]
	if !gen.Stdout {
		if path, err = target.Resolve(args[0], cfg.Preset.WithDefaults().Suffix); err != nil {
			return cmdutil.PrintError(cmd.ErrOrStderr(), err)
		}
	}

	sections = sections.Resolve()
	opts := cfg.DoughOptions()
	if len(args) > 1 {
		opts.Blocks = args[1:]
	}
	opts.Ego = sections.Ego
	opts.Main = sections.Main
	opts.Foot = sections.Foot
	opts.Description = gen.Description

	// Without --figlet the footer keeps its placeholder lines.
	opts.Art = figlet.New(figlet.ExecRunner{Path: cfg.Figlet.Path})
	opts.Art.Enabled = sections.Figlet

	var text string
	assemble := func() error {
		var err error
		text, err = crust.Dough(cmd.Context(), name, opts)
		return err
	}

	if opts.Art.Enabled {
		err = output.RunWithSpinner(cmd.Context(), assemble, output.WithTitle("Rendering figlet art..."))
	} else {
		err = assemble()
	}
	if err != nil {
		return cmdutil.PrintError(cmd.ErrOrStderr(), err)
	}

	if gen.Copy {
		if err := writeClipboard(text); err != nil {
			output.Warn("could not copy to clipboard", "error", err)
		} else {
			output.Debug("copied document to clipboard", "bytes", len(text))
		}
	}

	if gen.Stdout {
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	}

	w := &target.Writer{
		Force:     gen.Force,
		Confirmer: target.NewConfirmer(cmd.InOrStdin(), cmd.OutOrStdout()),
	}
	outcome, err := w.Write(path, text)
	if err != nil {
		return cmdutil.PrintError(cmd.ErrOrStderr(), err)
	}

	blocks := len(opts.Blocks)
	if opts.Main {
		blocks++
	}
	fmt.Fprintln(cmd.OutOrStdout(), output.FormatFileLine(path, blocks, string(outcome)))
	if outcome != target.Kept {
		fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark(output.StyleSummary.Render("Crust ready")))
	}

	return nil
}
