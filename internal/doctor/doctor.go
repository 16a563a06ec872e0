package doctor

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Check is one diagnostic probe of the host or the maa setup.
type Check interface {
	// Name is unique within a Runner.
	Name() string
	// Category groups related checks, e.g. "platform" or "scheduler".
	Category() string
	// Run performs the check. It must return a non-nil result.
	Run(ctx context.Context) *CheckResult
}

// DefaultConcurrency is how many checks a Runner runs at once.
const DefaultConcurrency = 4

// Runner executes checks concurrently and aggregates their results.
type Runner struct {
	checks []Check
	limit  int
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithConcurrency caps how many checks run at once. Values below 1 mean 1.
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) { r.limit = max(n, 1) }
}

// NewRunner creates a Runner with no checks.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{limit: DefaultConcurrency}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddCheck registers c. Results are reported in registration order.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes every check and returns the report. Cancelling ctx stops
// checks that have not started; they are reported as errors.
func (r *Runner) Run(ctx context.Context) *DoctorReport {
	start := time.Now()
	report := &DoctorReport{
		Timestamp: start.UTC(),
		Results:   make([]*CheckResult, len(r.checks)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)
	for i, check := range r.checks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				report.Results[i] = failedResult(check, "check not run: "+err.Error())
				return nil
			}
			res := check.Run(gctx)
			if res == nil {
				res = failedResult(check, "check returned no result")
			}
			report.Results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	for _, res := range report.Results {
		report.Summary.add(res.Status)
	}
	report.Duration = time.Since(start)
	return report
}

func failedResult(c Check, msg string) *CheckResult {
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityError,
		Message:  msg,
	}
}

// Fixers returns the checks that implement Fixer and have something to fix.
// Call it after Run.
func (r *Runner) Fixers() []Fixer {
	var out []Fixer
	for _, c := range r.checks {
		if f, ok := c.(Fixer); ok && f.CanFix() {
			out = append(out, f)
		}
	}
	return out
}

// DoctorReport is the outcome of one Runner.Run.
type DoctorReport struct {
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Duration  time.Duration  `json:"duration_ns" yaml:"duration"`
	Results   []*CheckResult `json:"results" yaml:"results"`
	Summary   Summary        `json:"summary" yaml:"summary"`
}

// HasErrors reports whether any check failed.
func (r *DoctorReport) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings reports whether any check warned.
func (r *DoctorReport) HasWarnings() bool {
	return r.Summary.Warnings > 0
}

// Worst returns the highest severity in the report, SeverityPass when empty.
func (r *DoctorReport) Worst() Severity {
	switch {
	case r.Summary.Errors > 0:
		return SeverityError
	case r.Summary.Warnings > 0:
		return SeverityWarning
	case r.Summary.Info > 0:
		return SeverityInfo
	}
	return SeverityPass
}
