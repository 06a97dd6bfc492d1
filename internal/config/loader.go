package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"

	oerrors "github.com/opmodel/crust/internal/errors"
)

// Environment variable prefix for crust configuration.
const envPrefix = "CRUST"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v    *viper.Viper
	path string
}

// NewLoader creates a new configuration loader with defaults registered,
// so every key can also be set from the environment.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("width", def.Width)
	v.SetDefault("length", def.Length)
	v.SetDefault("pad", def.Pad)
	v.SetDefault("tags", def.Tags)
	v.SetDefault("bar", def.Bar)
	v.SetDefault("blocks", def.Blocks)
	v.SetDefault("figlet.path", def.Figlet.Path)
	v.SetDefault("figlet.header_profile", def.Figlet.HeaderProfile)
	v.SetDefault("figlet.footer_profile", def.Figlet.FooterProfile)
	v.SetDefault("preset.suffix", def.Preset.Suffix)
	v.SetDefault("preset.hashbang", def.Preset.Hashbang)
	v.SetDefault("preset.imports", def.Preset.Imports)
	v.SetDefault("preset.main_body", def.Preset.MainBody)

	// No default: nil means "not configured".
	_ = v.BindEnv("log.timestamps", "CRUST_LOG_TIMESTAMPS")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}
	l.path = expandedPath

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	// A missing config file is fine: defaults and env vars apply.
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("reading config file: %v", err), "", "Fix the YAML syntax or run 'crust config init --force'")
		}
	}

	// Weak decoding would turn `tags: 4` into "4".
	if raw := l.v.Get("tags"); raw != nil {
		if _, ok := raw.(string); !ok {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("tags must be a string, got %T", raw), "tags", `Quote the value, for example tags: "<>  "`)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, oerrors.NewValidationError(fmt.Sprintf("decoding config: %v", err), "", "")
	}

	return &cfg, nil
}

// Path returns the expanded path of the last loaded config file.
func (l *Loader) Path() string {
	return l.path
}

// Source reports where the value of key came from.
func (l *Loader) Source(key string) ConfigSource {
	env := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if _, ok := os.LookupEnv(env); ok {
		return SourceEnv
	}
	if l.v.InConfig(key) {
		return SourceConfig
	}
	return SourceDefault
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
