// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/crust/internal/cmdutil"
	"github.com/opmodel/crust/internal/config"
	"github.com/opmodel/crust/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded during PersistentPreRunE. loadErr is reported by commands that
	// need the configuration, so config init still works on a broken file.
	loadedConfig *config.Config
	configLoader *config.Loader
	configPath   config.ResolveConfigPathResult
	loadErr      error
)

// NewRootCmd creates the root command for the crust CLI.
func NewRootCmd() *cobra.Command {
	var (
		gen      generateFlags
		layout   cmdutil.LayoutFlags
		sections cmdutil.SectionFlags
	)

	rootCmd := &cobra.Command{
		Use:   "crust [flags] <file> [block...]",
		Short: "Generate a commented Python skeleton",
		Long: `crust writes a new Python file with a shebang, a docstring, commented
imports and one labeled block per name. Blocks default to "setup" and
"helpers" when none are given.

A file literally named "version" or "config" needs a path prefix, for
example ./config.

Examples:
  # Two default blocks
  crust demo

  # Named blocks with figlet headers, main block and footer
  crust -A tool io parse report

  # Preview without writing
  crust --stdout demo setup`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, gen, &layout, sections)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: CRUST_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	gen.AddTo(rootCmd)
	layout.AddTo(rootCmd)
	sections.AddTo(rootCmd)

	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	loadedConfig, configLoader, loadErr = nil, nil, nil

	resolved, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: configFlag,
	})
	if err != nil {
		return cmdutil.PrintError(cmd.ErrOrStderr(), err)
	}
	configPath = resolved

	configLoader = config.NewLoader()
	loadedConfig, loadErr = configLoader.Load(resolved.ConfigPath)

	logCfg := output.LogConfig{
		Verbose: verboseFlag,
		Writer:  cmd.ErrOrStderr(),
	}

	// flag (if explicitly set) > config > default (off)
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if loadedConfig != nil && loadedConfig.Log.Timestamps != nil {
		logCfg.Timestamps = loadedConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	output.Debug("initializing CLI",
		"config", resolved.ConfigPath,
		"source", resolved.Source,
	)
	if loadErr != nil {
		output.Debug("config load error", "error", loadErr)
	}

	return nil
}

// currentConfig returns a copy of the loaded configuration or the load error.
func currentConfig() (*config.Config, error) {
	if loadErr != nil {
		return nil, loadErr
	}
	if loadedConfig == nil {
		return config.DefaultConfig(), nil
	}
	cfg := *loadedConfig
	cfg.Blocks = append([]string(nil), loadedConfig.Blocks...)
	return &cfg, nil
}

// configFilePath returns the expanded config file path, preferring the one
// the loader actually read.
func configFilePath() (string, error) {
	if configLoader != nil && configLoader.Path() != "" {
		return configLoader.Path(), nil
	}
	return config.ExpandPath(configPath.ConfigPath)
}
