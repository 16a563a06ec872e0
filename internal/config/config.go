// Package config provides configuration management for maa using Viper.
package config

import (
	"io/fs"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/thoreinstein/maa/internal/errors"
	"github.com/thoreinstein/maa/internal/paths"
	"github.com/thoreinstein/maa/pkg/fileutil"
	"github.com/thoreinstein/maa/pkg/maa"
)

// EnvPrefix is the prefix for environment overrides, e.g. MAA_PROBE_ROOT.
const EnvPrefix = "MAA"

// Config represents the top-level configuration structure.
type Config struct {
	Version  int            `mapstructure:"version" yaml:"version"`
	Probe    ProbeConfig    `mapstructure:"probe" yaml:"probe"`
	Priority PriorityConfig `mapstructure:"priority" yaml:"priority"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// ProbeConfig locates the board identification sources.
type ProbeConfig struct {
	Root          string `mapstructure:"root" yaml:"root"`
	BoardNamePath string `mapstructure:"board_name_path" yaml:"board_name_path"`
	ModelPath     string `mapstructure:"model_path" yaml:"model_path"`
}

// PriorityConfig holds the real-time priority used when none is given.
type PriorityConfig struct {
	Default uint `mapstructure:"default" yaml:"default"`
}

// LogConfig holds logging defaults; CLI flags override them.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	// MAA_PROBE_ROOT -> probe.root
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	for key, value := range defaults() {
		viper.SetDefault(key, value)
	}
}

func defaults() map[string]any {
	return map[string]any{
		"version":               1,
		"probe.root":            "/",
		"probe.board_name_path": paths.DMIBoardName,
		"probe.model_path":      paths.DeviceTreeModel,
		"priority.default":      99,
		"log.level":             "info",
		"log.format":            "text",
	}
}

// Keys returns every configuration key in sorted order.
func Keys() []string {
	return slices.Sorted(maps.Keys(defaults()))
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Config {
	return &Config{
		Version: 1,
		Probe: ProbeConfig{
			Root:          "/",
			BoardNamePath: paths.DMIBoardName,
			ModelPath:     paths.DeviceTreeModel,
		},
		Priority: PriorityConfig{Default: 99},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load: defaults apply.
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errs[0], "validating config"), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// Save validates cfg and writes it to path atomically, creating the parent
// directory. An empty path writes the default location.
func Save(path string, cfg *Config) error {
	if errs := Validate(cfg); len(errs) > 0 {
		return errors.Mark(errors.Wrap(errs[0], "validating config"), errors.ErrInvalidConfig)
	}
	if path == "" {
		path = paths.ConfigFile()
	}
	if err := paths.EnsureDir(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	if err := fileutil.AtomicWriteYAML(path, cfg, 0o644); err != nil {
		return errors.Wrap(err, "writing config file")
	}
	return nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given .env files into the
// process environment without overriding variables that are already set.
// Missing files are skipped.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Wrapf(err, "loading %s", f)
		}
	}
	return nil
}

// Prober returns a board prober reading the configured sources.
func (c *Config) Prober() *maa.SysfsProber {
	return &maa.SysfsProber{
		Root:          c.Probe.Root,
		BoardNamePath: c.Probe.BoardNamePath,
		ModelPath:     c.Probe.ModelPath,
	}
}
