package doctor

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/maa/internal/config"
	"github.com/thoreinstein/maa/internal/errors"
	"github.com/thoreinstein/maa/internal/paths"
	"github.com/thoreinstein/maa/pkg/fileutil"
)

// ConfigCheck validates the maa configuration file: YAML syntax, field
// values and permissions.
type ConfigCheck struct {
	PermissionFixer

	path string
}

var (
	_ Check = (*ConfigCheck)(nil)
	_ Fixer = (*ConfigCheck)(nil)
)

// NewConfigCheck creates a configuration check for path. An empty path
// checks the default location.
func NewConfigCheck(path string) *ConfigCheck {
	if path == "" {
		path = paths.ConfigFile()
	}
	return &ConfigCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *ConfigCheck) Name() string {
	return "config"
}

// Category returns the grouping for this check.
func (c *ConfigCheck) Category() string {
	return "config"
}

// Run executes the configuration check and returns its result.
func (c *ConfigCheck) Run(_ context.Context) *CheckResult {
	c.setIssues(nil)
	details := map[string]any{"path": c.path}

	info, err := os.Stat(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "no config file; defaults in use",
			Details:  details,
		}
	}
	if err != nil {
		details["error"] = err.Error()
		return c.result(SeverityError, "config file is not accessible", details)
	}
	if info.IsDir() {
		return c.result(SeverityError, "config path is a directory", details)
	}

	data, err := fileutil.ReadFileWithLimit(c.path)
	if err != nil {
		details["error"] = err.Error()
		return c.result(SeverityError, "config file is not readable", details)
	}

	cfg := config.Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		details["error"] = err.Error()
		return c.result(SeverityError, "config file is not valid YAML", details)
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		details["errors"] = msgs
		return c.result(SeverityError, fmt.Sprintf("%d invalid setting(s)", len(errs)), details)
	}

	issues := checkPermissions(c.path, "file", info.Mode())
	if dirInfo, err := os.Stat(filepath.Dir(c.path)); err == nil {
		issues = append(issues, checkPermissions(filepath.Dir(c.path), "directory", dirInfo.Mode())...)
	}
	c.setIssues(issues)

	if len(issues) > 0 {
		problems := make([]map[string]any, 0, len(issues))
		for _, issue := range issues {
			problems = append(problems, map[string]any{
				"path":        issue.Path,
				"problem":     issue.Problem,
				"permissions": issue.Permissions,
			})
		}
		details["issues"] = problems
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  fmt.Sprintf("%d permission issue(s)", len(issues)),
			Details:  details,
			Fixable:  true,
			FixHint:  "run: maa doctor --fix",
		}
	}

	return c.result(SeverityPass, "config file is valid", details)
}

func (c *ConfigCheck) result(status Severity, msg string, details map[string]any) *CheckResult {
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   status,
		Message:  msg,
		Details:  details,
	}
}

// checkPermissions flags world-writable paths.
func checkPermissions(path, kind string, mode os.FileMode) []pathIssue {
	if mode.Perm()&0o002 == 0 {
		return nil
	}
	return []pathIssue{{
		Path:        path,
		Type:        kind,
		Problem:     kind + " is world-writable",
		Permissions: formatPermissions(mode),
		Fixable:     true,
	}}
}

func formatPermissions(mode os.FileMode) string {
	return fmt.Sprintf("%04o", mode.Perm())
}
