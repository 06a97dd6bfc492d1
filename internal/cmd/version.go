package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/crust/internal/config"
	"github.com/opmodel/crust/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show crust version information.

Displays:
  - crust version, commit, and build date
  - figlet binary location and version`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	figletPath := config.DefaultConfig().Figlet.Path
	if cfg, err := currentConfig(); err == nil {
		figletPath = cfg.Figlet.Path
	}

	fmt.Fprintln(cmd.OutOrStdout(), version.FullVersionString(version.Get(), version.DetectFiglet(figletPath)))
	return nil
}
