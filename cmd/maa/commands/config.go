package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/maa/internal/config"
	"github.com/thoreinstein/maa/internal/errors"
	"github.com/thoreinstein/maa/internal/paths"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage maa configuration",
	Long: `Manage maa configuration stored in ~/.config/maa/config.yaml.

Without a subcommand, lists the effective configuration: file values
merged with MAA_* environment overrides and defaults.`,
	Example: `  # List all configuration
  maa config

  # Probe a mounted board image
  maa config set probe.root /mnt/galileo

  # Default priority for "maa priority"
  maa config set priority.default 50`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Get a configuration value",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys(),
	RunE:      runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write the config file.

The resulting configuration is validated before it is written.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML format.`,
	RunE:  runConfigList,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), configTarget())
		return nil
	},
}

// configTarget is the file config set writes: --config, the file viper
// loaded, or the default location.
func configTarget() string {
	if configFile != "" {
		return configFile
	}
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return paths.ConfigFile()
}

func checkKey(key string) error {
	if slices.Contains(config.Keys(), key) {
		return nil
	}
	return errors.NewUserError(errors.Newf("unknown config key %q", key), "Run: maa config list")
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if err := checkKey(args[0]); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), viper.GetString(args[0]))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if err := checkKey(key); err != nil {
		return err
	}

	viper.Set(key, value)
	var updated config.Config
	if err := viper.Unmarshal(&updated); err != nil {
		return errors.NewUserError(errors.Wrapf(err, "invalid value for %s", key), "")
	}

	path := configTarget()
	if err := config.Save(path, &updated); err != nil {
		if errors.Is(err, errors.ErrInvalidConfig) {
			return errors.NewUserError(err, "")
		}
		return errors.NewSystemError(err, "")
	}

	cfg = &updated
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", key, value, path)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
