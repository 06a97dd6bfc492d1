package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/crust/internal/cmdutil"
	"github.com/opmodel/crust/internal/config"
	oerrors "github.com/opmodel/crust/internal/errors"
	"github.com/opmodel/crust/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the crust configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML with a string "tags" value
  3. Values are in range and figlet profiles are known

The config path is resolved using precedence:
  --config flag > CRUST_CONFIG env > ~/.crust/config.yaml

Examples:
  # Validate default configuration
  crust config vet

  # Validate custom config path
  crust config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	path, err := configFilePath()
	if err != nil {
		return cmdutil.PrintError(cmd.ErrOrStderr(), err)
	}

	output.Debug("validating config", "path", path, "source", configPath.Source)

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return cmdutil.PrintError(cmd.ErrOrStderr(),
			oerrors.NewPermissionError(err.Error(), path, ""))
	}
	if !exists {
		return cmdutil.PrintError(cmd.ErrOrStderr(), &oerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: path,
			Hint:     "Run 'crust config init' to create default configuration",
			Cause:    oerrors.ErrNotFound,
		})
	}

	cfg, err := currentConfig()
	if err != nil {
		return cmdutil.PrintError(cmd.ErrOrStderr(), err)
	}
	if err := config.Validate(cfg); err != nil {
		return cmdutil.PrintError(cmd.ErrOrStderr(), err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+output.StyleNoun.Render(path)))
	return nil
}
