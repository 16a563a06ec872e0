package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/maa/internal/cli/prompt"
	"github.com/thoreinstein/maa/internal/errors"
	"github.com/thoreinstein/maa/internal/logging"
	"github.com/thoreinstein/maa/pkg/maa"
)

// selectorInput feeds the numbered menu when stdout is not a terminal.
var selectorInput io.Reader = os.Stdin

var (
	resultAll         bool
	resultInteractive bool
	resultFormat      string
)

func init() {
	resultCmd.Flags().BoolVarP(&resultAll, "all", "a", false,
		"describe every result code")
	resultCmd.Flags().BoolVarP(&resultInteractive, "interactive", "i", false,
		"pick a result code interactively")
	resultCmd.Flags().StringVarP(&resultFormat, "format", "o", formatText,
		"output format: text, json, yaml")
	resultCmd.MarkFlagsMutuallyExclusive("all", "interactive")
	rootCmd.AddCommand(resultCmd)
}

var resultCmd = &cobra.Command{
	Use:   "result [CODE...]",
	Short: "Describe maa result codes",
	Long: `Print the diagnostic line for each result CODE, exactly as the library's
ResultPrint writes it. Codes outside the defined set print the label for
an unspecified error.`,
	Example: `  maa result 0 12
  maa result --all
  maa result -i`,
	PreRunE: func(_ *cobra.Command, args []string) error {
		if err := validateFormat(resultFormat); err != nil {
			return err
		}
		if len(args) == 0 && !resultAll && !resultInteractive {
			return errors.NewUserError(errors.New("no result code given"),
				"pass one or more codes, --all or --interactive")
		}
		return nil
	},
	RunE: runResult,
}

// resultReport is the structured form of one code.
type resultReport struct {
	Code    int    `json:"code" yaml:"code"`
	Label   string `json:"label" yaml:"label"`
	Kind    string `json:"kind" yaml:"kind"`
	Defined bool   `json:"defined" yaml:"defined"`
}

func describe(code int, r maa.Result) resultReport {
	return resultReport{
		Code:    code,
		Label:   r.Label(),
		Kind:    string(r.Kind()),
		Defined: r.Valid(),
	}
}

func runResult(cmd *cobra.Command, args []string) error {
	logger := logging.FromContext(cmd.Context())
	w := cmd.OutOrStdout()

	var codes []int
	switch {
	case resultAll:
		for _, r := range maa.Results() {
			codes = append(codes, int(r))
		}
	case resultInteractive:
		r, err := pickResult(w)
		if errors.Is(err, prompt.ErrSelectionCancelled) {
			return nil
		}
		if err != nil {
			return err
		}
		codes = []int{int(r)}
	default:
		for _, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return errors.NewUserError(
					errors.Wrapf(err, "invalid result code %q", arg),
					"result codes are integers, see: maa result --all")
			}
			codes = append(codes, n)
		}
	}

	reports := make([]resultReport, 0, len(codes))
	for _, code := range codes {
		if _, err := maa.ParseResult(code); err != nil {
			logger.Debug("undefined result code", "code", code)
		}
		reports = append(reports, describe(code, maa.Result(code)))
	}

	if ok, err := writeStructured(w, resultFormat, reports); ok {
		return err
	}
	return printResults(w, codes, resultAll, logger)
}

func printResults(w io.Writer, codes []int, table bool, logger *slog.Logger) error {
	for _, code := range codes {
		r := maa.Result(code)
		if table {
			fmt.Fprintf(w, "%3d  %-11s  ", code, r.Kind())
		}
		maa.FprintResult(w, r)
	}
	logger.Debug("described result codes", "count", len(codes))
	return nil
}

// pickResult chooses a code with the fuzzy finder on a terminal and a
// numbered menu otherwise.
func pickResult(w io.Writer) (maa.Result, error) {
	results := maa.Results()
	label := func(i int) string {
		return fmt.Sprintf("%d  %s", int(results[i]), results[i].Label())
	}

	var (
		idx int
		err error
	)
	if logging.IsTTY(w) {
		idx, err = prompt.Fuzzy(len(results), label, func(i int) string {
			r := results[i]
			return fmt.Sprintf("Code: %d\nKind: %s\n\n%s", int(r), r.Kind(), r.String())
		})
	} else {
		idx, err = prompt.NewSelectorWithIO(selectorInput, w).Select("Result codes", len(results), label)
	}
	if err != nil {
		return maa.ErrorUnspecified, err
	}
	return results[idx], nil
}
