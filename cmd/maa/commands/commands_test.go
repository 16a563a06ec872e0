package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/thoreinstein/maa/internal/config"
	"github.com/thoreinstein/maa/internal/errors"
	"github.com/thoreinstein/maa/internal/paths"
)

// resetFlags restores every flag to its default. Cobra reuses flag sets
// across Execute calls, so Changed must be cleared for flag groups.
func resetFlags(t *testing.T) {
	t.Helper()

	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)

	verbosity, quiet = 0, false
	logFormat, logFile, colorFlag = "", "", "auto"
	configFile, envFile = "", filepath.Join(t.TempDir(), "none.env")
	cfg, configLoadErr = config.Default(), nil

	platformFormat, platformList = formatText, false
	priorityFormat = formatText
	resultAll, resultInteractive, resultFormat = false, false, formatText
	versionFormat = formatText
	doctorFormat, doctorQuiet, doctorVerbose, doctorFix = formatText, false, false, false

	noColor := color.NoColor
	t.Cleanup(func() { color.NoColor = noColor })

	viper.Reset()
	t.Cleanup(viper.Reset)
}

// executeCommand runs maa with args and returns stdout and the error.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// fakeRoot builds a host tree whose DMI board name is boardName.
func fakeRoot(t *testing.T, boardName string) string {
	t.Helper()
	root := t.TempDir()
	path := filepath.Join(root, paths.DMIBoardName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(boardName+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

// asExitError returns the ExitError in err's chain or fails t.
func asExitError(t *testing.T, err error) *errors.ExitError {
	t.Helper()
	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want an ExitError", err)
	}
	return exitErr
}
