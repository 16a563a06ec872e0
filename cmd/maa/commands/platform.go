package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/maa/internal/errors"
	"github.com/thoreinstein/maa/internal/logging"
	"github.com/thoreinstein/maa/pkg/maa"
)

var (
	platformFormat string
	platformList   bool
)

func init() {
	platformCmd.Flags().StringVarP(&platformFormat, "format", "o", formatText,
		"output format: text, json, yaml")
	platformCmd.Flags().BoolVar(&platformList, "list", false,
		"list supported boards instead of probing")
	rootCmd.AddCommand(platformCmd)
}

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Identify the board",
	Long: `Probe the host and report which board it is.

The DMI board name is read first, then the device-tree model. Use
probe.root in the config file (or MAA_PROBE_ROOT) to probe a mounted image
instead of the running host.`,
	Example: `  maa platform
  maa platform -o json
  maa platform --list`,
	Args: cobra.NoArgs,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return validateFormat(platformFormat)
	},
	RunE: runPlatform,
}

// platformReport is the structured form of "maa platform".
type platformReport struct {
	Result      string `json:"result" yaml:"result"`
	Code        int    `json:"code" yaml:"code"`
	Platform    int    `json:"platform" yaml:"platform"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Fallback    string `json:"fallback" yaml:"fallback"`
}

func runPlatform(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	if platformList {
		return listBoards(w)
	}

	logger := logging.FromContext(cmd.Context())
	ini := maa.NewInitializer(cfg.Prober(), maa.WithLogger(logger))
	maa.SetDefault(ini)

	code := maa.Init()
	if code != maa.Success {
		cause := ini.Err()
		if cause == nil {
			cause = code.Err()
		}
		return errors.NewSystemError(
			errors.Wrap(cause, code.Label()),
			"check that the board identification files are readable")
	}

	platform := maa.GetPlatformType()
	board := ini.Board()
	report := platformReport{
		Result:      code.Label(),
		Code:        int(code),
		Platform:    int(platform),
		Name:        board.Name,
		Description: board.Description,
		Fallback:    platform.Fallback().String(),
	}

	if ok, err := writeStructured(w, platformFormat, report); ok {
		return err
	}

	fmt.Fprintf(w, "board:       %s (%d)\n", report.Name, report.Platform)
	fmt.Fprintf(w, "description: %s\n", report.Description)
	if !platform.Known() {
		fmt.Fprintf(w, "mapping:     %s\n", report.Fallback)
	}
	return nil
}

func listBoards(w io.Writer) error {
	boards := maa.Boards()
	if ok, err := writeStructured(w, platformFormat, boards); ok {
		return err
	}
	for _, b := range boards {
		fmt.Fprintf(w, "%-3d %-13s %s\n", int(b.Platform), b.Name, b.Description)
	}
	return nil
}
