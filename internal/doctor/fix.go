package doctor

import (
	"fmt"
	"os"
	"sync"

	"github.com/thoreinstein/maa/internal/errors"
)

// Fixer is an optional interface that checks can implement to support auto-remediation.
// Checks that implement Fixer can fix issues they detect when the --fix flag is used.
type Fixer interface {
	// CanFix returns true if this check has fixable issues.
	// Must be called after Run() to check if there are issues that can be fixed.
	CanFix() bool

	// Fix attempts to remediate the issues found by Run().
	// Returns a slice of FixResult indicating what was fixed or why it couldn't be fixed.
	// Must be called after Run().
	Fix() []FixResult
}

// FixResult describes the outcome of an attempted fix operation.
type FixResult struct {
	// Path is the file or directory that was targeted for fixing.
	Path string `json:"path" yaml:"path"`

	// Fixed indicates whether the fix was successfully applied.
	Fixed bool `json:"fixed" yaml:"fixed"`

	// Description explains what was fixed or why it couldn't be fixed.
	Description string `json:"description" yaml:"description"`

	// Error contains the error if the fix failed.
	Error error `json:"-" yaml:"-"`
}

// secureFilePerm is the target permission for the config file (rw-r--r--).
const secureFilePerm os.FileMode = 0o644

// secureDirPerm is the target permission for the config directory (rwxr-xr-x).
const secureDirPerm os.FileMode = 0o755

// pathIssue is a permission problem found by a check.
type pathIssue struct {
	Path        string
	Type        string // "file" or "directory"
	Problem     string
	Permissions string
	Fixable     bool
}

// PermissionFixer fixes file and directory permission issues.
// It is embedded in ConfigCheck to provide fix capability.
type PermissionFixer struct {
	mu     sync.Mutex
	issues []pathIssue
}

// CanFix returns true if there are any fixable permission issues.
func (f *PermissionFixer) CanFix() bool {
	return f.CountFixable() > 0
}

// Fix attempts to fix all fixable permission issues.
// Returns a FixResult for each fixable issue.
func (f *PermissionFixer) Fix() []FixResult {
	var results []FixResult
	for _, issue := range f.pending() {
		if !issue.Fixable {
			continue
		}
		results = append(results, f.fixIssue(issue))
	}
	return results
}

// fixIssue attempts to fix a single permission issue.
func (f *PermissionFixer) fixIssue(issue pathIssue) FixResult {
	result := FixResult{
		Path: issue.Path,
	}

	var targetPerm os.FileMode
	switch issue.Type {
	case "file":
		targetPerm = secureFilePerm
	case "directory":
		targetPerm = secureDirPerm
	default:
		result.Description = "unknown type: " + issue.Type
		result.Error = errors.Newf("cannot fix unknown type: %s", issue.Type)
		return result
	}

	if err := os.Chmod(issue.Path, targetPerm); err != nil {
		result.Description = fmt.Sprintf("failed to chmod %04o: %v", targetPerm, err)
		result.Error = errors.Wrapf(err, "chmod %04o %s", targetPerm, issue.Path)
		return result
	}

	result.Fixed = true
	result.Description = fmt.Sprintf("chmod %04o", targetPerm)
	return result
}

func (f *PermissionFixer) pending() []pathIssue {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]pathIssue(nil), f.issues...)
}

// setIssues stores the issues found by the check for later fixing.
func (f *PermissionFixer) setIssues(issues []pathIssue) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issues = issues
}

// CountFixable returns the number of fixable issues.
func (f *PermissionFixer) CountFixable() int {
	count := 0
	for _, issue := range f.pending() {
		if issue.Fixable {
			count++
		}
	}
	return count
}
