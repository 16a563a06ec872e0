package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/maa/internal/doctor"
	"github.com/thoreinstein/maa/internal/errors"
)

var (
	doctorFormat  string
	doctorQuiet   bool
	doctorVerbose bool
	doctorFix     bool
)

func init() {
	doctorCmd.Flags().StringVarP(&doctorFormat, "format", "o", formatText,
		"output format: text, json, yaml")
	doctorCmd.Flags().BoolVar(&doctorQuiet, "quiet", false,
		"suppress output, exit code only")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "verbose", false,
		"show detailed check-by-check output")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false,
		"fix issues that can be fixed automatically")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose board detection and scheduling issues",
	Long: `Run diagnostic checks on the host and maa configuration.

Checks board detection, real-time scheduling privileges, the host kernel,
and the config file, and identifies potential issues before they cause
problems. The process-wide platform state and scheduling policy are not
changed.

Output modes (mutually exclusive):
  (default)    Show errors and warnings
  --verbose    Show all checks including passed ones
  --quiet      No output, exit code only
  -o json|yaml Machine-readable output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Args:    cobra.NoArgs,
	PreRunE: validateDoctorFlags,
	RunE:    runDoctor,
}

// validateDoctorFlags ensures output flags are mutually exclusive.
func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	if err := validateFormat(doctorFormat); err != nil {
		return err
	}

	count := 0
	if doctorFormat != formatText {
		count++
	}
	if doctorQuiet {
		count++
	}
	if doctorVerbose {
		count++
	}

	if count > 1 {
		return errors.NewUserError(
			errors.New("flags --format, --quiet and --verbose are mutually exclusive"), "")
	}

	return nil
}

// newDoctorRunner registers the standard checks against the loaded config.
func newDoctorRunner() *doctor.Runner {
	runner := doctor.NewRunner()
	runner.AddCheck(doctor.NewPlatformCheck(cfg.Prober()))
	runner.AddCheck(doctor.NewSchedulerCheck(nil))
	runner.AddCheck(doctor.NewHostCheck(nil))
	runner.AddCheck(doctor.NewConfigCheck(configFile))
	return runner
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	runner := newDoctorRunner()
	report := runner.Run(cmd.Context())

	if doctorFix {
		if fixed := applyFixes(w, runner); fixed > 0 {
			report = runner.Run(cmd.Context())
		}
	}

	if err := outputDoctorReport(w, report); err != nil {
		return err
	}

	return doctorExit(report)
}

// doctorExit maps the report to an exit status.
func doctorExit(report *doctor.DoctorReport) error {
	switch report.Worst() {
	case doctor.SeverityError:
		return errors.NewExitError(errDoctorFindings, errors.ExitSystem)
	case doctor.SeverityWarning:
		return errors.NewExitError(errDoctorFindings, errors.ExitUser)
	}
	return nil
}

func applyFixes(w io.Writer, runner *doctor.Runner) int {
	fixed := 0
	for _, f := range runner.Fixers() {
		for _, r := range f.Fix() {
			if r.Fixed {
				fixed++
			}
			if !doctorQuiet && doctorFormat == formatText {
				fmt.Fprintf(w, "%s %s: %s\n", fixIcon(r.Fixed), r.Path, r.Description)
			}
		}
	}
	return fixed
}

func outputDoctorReport(w io.Writer, report *doctor.DoctorReport) error {
	if doctorQuiet {
		return nil
	}

	if ok, err := writeStructured(w, doctorFormat, report); ok {
		return err
	}

	return outputDoctorText(w, report)
}

func outputDoctorText(w io.Writer, report *doctor.DoctorReport) error {
	// In normal mode, show only errors and warnings
	showAll := doctorVerbose

	hasOutput := false
	for _, result := range report.Results {
		problem := result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning
		if !showAll && !problem {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)

		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
		if showAll {
			for _, k := range sortedKeys(result.Details) {
				fmt.Fprintf(w, "    %s: %v\n", k, result.Details[k])
			}
		}
	}

	if hasOutput || showAll {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)

	return nil
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}

func fixIcon(fixed bool) string {
	if fixed {
		return color.GreenString("fixed")
	}
	return color.RedString("not fixed")
}

// errDoctorFindings marks the doctor exit status; the report itself is
// the message, so it is not printed again.
var errDoctorFindings = errors.New("doctor found issues")
