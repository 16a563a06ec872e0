package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/maa/pkg/maa"
)

var versionFormat string

func init() {
	versionCmd.Flags().StringVarP(&versionFormat, "format", "o", formatText,
		"output format: text, json, yaml")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, and build date of maa.`,
	Args:  cobra.NoArgs,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		return validateFormat(versionFormat)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		info := maa.VersionInfo()
		w := cmd.OutOrStdout()
		if ok, err := writeStructured(w, versionFormat, info); ok {
			return err
		}
		fmt.Fprintf(w, "maa version %s\n", info.Version)
		fmt.Fprintf(w, "  commit:    %s\n", info.Commit)
		fmt.Fprintf(w, "  built:     %s\n", info.Date)
		fmt.Fprintf(w, "  go:        %s\n", runtime.Version())
		return nil
	},
}
