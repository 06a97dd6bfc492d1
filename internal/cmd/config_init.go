package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opmodel/crust/internal/cmdutil"
	"github.com/opmodel/crust/internal/config"
	oerrors "github.com/opmodel/crust/internal/errors"
	"github.com/opmodel/crust/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the crust configuration.

Writes the built-in defaults to ~/.crust/config.yaml, or to the path given
by --config or CRUST_CONFIG. Every key can then be edited, including the
preset text placed at the top and bottom of generated files.

Examples:
  # Initialize configuration
  crust config init

  # Overwrite existing configuration
  crust config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "r", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	path, err := configFilePath()
	if err != nil || path == "" {
		return cmdutil.PrintError(cmd.ErrOrStderr(),
			oerrors.Wrap(oerrors.ErrNotFound, "could not determine config path"))
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return cmdutil.PrintError(cmd.ErrOrStderr(),
			oerrors.NewPermissionError(err.Error(), path, ""))
	}
	if exists && !force {
		return cmdutil.PrintError(cmd.ErrOrStderr(), &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		})
	}

	data, err := config.Marshal(config.DefaultConfig())
	if err != nil {
		return cmdutil.PrintError(cmd.ErrOrStderr(), fmt.Errorf("encoding default config: %w", err))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return cmdutil.PrintError(cmd.ErrOrStderr(),
			oerrors.NewPermissionError(err.Error(), filepath.Dir(path), ""))
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return cmdutil.PrintError(cmd.ErrOrStderr(),
			oerrors.NewPermissionError(err.Error(), path, ""))
	}

	output.Debug("wrote default config", "path", path, "source", configPath.Source)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark("Configuration initialized at "+output.StyleNoun.Render(path)))
	fmt.Fprintln(out, "Validate with: crust config vet")

	return nil
}
