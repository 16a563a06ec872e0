// Package commands implements the CLI commands for maa.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/maa/internal/config"
	"github.com/thoreinstein/maa/internal/errors"
	"github.com/thoreinstein/maa/internal/logging"
	"github.com/thoreinstein/maa/internal/paths"
	"github.com/thoreinstein/maa/pkg/maa"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// colorFlag holds the value of the --color flag.
var colorFlag string

// configFile holds the value of the --config flag.
var configFile string

// envFile holds the value of the --env-file flag.
var envFile string

// cfg is the loaded configuration; defaults until initConfig runs.
var cfg = config.Default()

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json (default from config)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write JSON logs to this file (a bare name goes in ~/.local/state/maa)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml, then ~/.config/maa/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env",
		"load MAA_* variables from this file if it exists")

	rootCmd.Version = maa.GetVersion()
	rootCmd.SetVersionTemplate("maa version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	if err := config.LoadDotEnv(envFile); err != nil {
		configLoadErr = err
		return
	}

	config.Init()
	loaded, err := config.Load(configFile)
	if err != nil {
		configLoadErr = err
		return
	}
	cfg = loaded
}

var rootCmd = &cobra.Command{
	Use:   "maa",
	Short: "Board detection and real-time priority for Intel Galileo",
	Long: `maa identifies which Intel Galileo board the host is, switches processes
to real-time round-robin scheduling, and describes the result codes shared
by the maa library.

Board detection reads the DMI board name, falling back to the device-tree
model. Unrecognised boards report "unknown" and load the Gen1 mapping.`,
	Example: `  # Identify the board
  maa platform

  # Request real-time priority 50
  sudo maa priority 50

  # Describe a result code
  maa result 12

  # Check system health
  maa doctor`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger from the verbosity, format
// and color flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("conflicting flags"), "cannot use --quiet and --verbose together")
	}

	colorMode, err := logging.ParseColorMode(colorFlag)
	if err != nil {
		return errors.NewUserError(err, "use --color auto, always or never")
	}
	switch colorMode {
	case logging.ColorAlways:
		color.NoColor = false
	case logging.ColorNever:
		color.NoColor = true
	}

	var level slog.Level
	switch {
	case quiet:
		level = slog.LevelError
	case verbosity > 0:
		level = logging.LevelFromVerbosity(verbosity)
	default:
		level = levelFromEnv()
	}

	formatName := logFormat
	if formatName == "" {
		formatName = cfg.Log.Format
	}
	format, err := logging.ParseFormat(formatName)
	if err != nil {
		return errors.NewUserError(err, "use --log-format text or json")
	}

	lc := logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Color:  colorMode,
	}
	if logFile != "" {
		path, err := paths.LogFile(logFile)
		if err != nil {
			return errors.NewSystemError(err, "")
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		lc.File = f
	}

	logger := logging.New(lc)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// levelFromEnv resolves the level when no -v flag is given: MAA_DEBUG
// first, then log.level from the config file, which defaults to warn
// for CLI use.
func levelFromEnv() slog.Level {
	if val, ok := os.LookupEnv("MAA_DEBUG"); ok {
		switch val {
		case "1", "true":
			return slog.LevelDebug
		case "2":
			return logging.LevelTrace
		}
	}
	if cfg.Log.Level != "" && cfg.Log.Level != config.Default().Log.Level {
		if level, err := logging.ParseLevel(cfg.Log.Level); err == nil {
			return level
		}
	}
	return logging.LevelFromVerbosity(0)
}

// checkConfig reports config load errors, except for commands that must
// work with a broken config.
func checkConfig(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version", "doctor", "gen-doc":
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return errors.ExitSuccess
	}
	return reportError(os.Stderr, err)
}

// reportError prints err, its suggestion and any hints, and returns the
// exit code.
func reportError(w io.Writer, err error) int {
	var exitErr *errors.ExitError
	cause, suggestion := err, ""
	if errors.As(err, &exitErr) {
		cause, suggestion = exitErr.Err, exitErr.Suggestion
	}

	if cause != nil && !errors.Is(err, errDoctorFindings) {
		fmt.Fprintf(w, "%s %v\n", color.RedString("Error:"), cause)
	}
	if suggestion != "" {
		fmt.Fprintf(w, "%s\n", color.YellowString(suggestion))
	}
	if cause != nil {
		for _, hint := range errors.GetAllHints(cause) {
			fmt.Fprintf(w, "  hint: %s\n", hint)
		}
	}
	return errors.ExitCode(err)
}
