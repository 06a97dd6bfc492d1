package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/crust/internal/cmdutil"
	"github.com/opmodel/crust/internal/config"
	"github.com/opmodel/crust/internal/output"
)

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show resolved configuration",
		Long: `Show every configuration value and where it came from: the
environment, the config file, or the built-in default.

Examples:
  crust config show
  CRUST_WIDTH=100 crust config show`,
		Args: cobra.NoArgs,
		RunE: runConfigShow,
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := currentConfig()
	if err != nil {
		return cmdutil.PrintError(cmd.ErrOrStderr(), err)
	}

	timestamps := "off"
	if cfg.Log.Timestamps != nil && *cfg.Log.Timestamps {
		timestamps = "on"
	}

	values := []struct{ key, value string }{
		{"width", strconv.Itoa(cfg.Width)},
		{"length", strconv.Itoa(cfg.Length)},
		{"pad", strconv.Itoa(cfg.Pad)},
		{"tags", cfg.Tags},
		{"bar", cfg.Bar},
		{"blocks", strings.Join(cfg.Blocks, ",")},
		{"figlet.path", cfg.Figlet.Path},
		{"figlet.header_profile", cfg.Figlet.HeaderProfile},
		{"figlet.footer_profile", cfg.Figlet.FooterProfile},
		{"preset.suffix", cfg.Preset.Suffix},
		{"log.timestamps", timestamps},
	}

	rows := make([]output.SettingRow, 0, len(values))
	for _, v := range values {
		source := config.SourceDefault
		if configLoader != nil {
			source = configLoader.Source(v.key)
		}
		rows = append(rows, output.SettingRow{Key: v.key, Value: v.value, Source: string(source)})
	}

	path, err := configFilePath()
	if err != nil {
		path = configPath.ConfigPath
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, output.StyleDim.Render("config: ")+output.StyleNoun.Render(path)+
		output.StyleDim.Render(" ("+string(configPath.Source)+")"))
	fmt.Fprintln(out, output.RenderSettingsTable(rows))
	return nil
}
