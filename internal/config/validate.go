package config

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/maa/internal/errors"
	"github.com/thoreinstein/maa/internal/logging"
)

// MaxPriority is the highest real-time priority accepted in the config.
const MaxPriority = 99

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrPriorityRange indicates priority.default is above MaxPriority.
	ErrPriorityRange = errors.New("priority must be between 0 and 99")

	// ErrInvalidLogSetting indicates an unknown log level or format.
	ErrInvalidLogSetting = errors.New("invalid log setting")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of field errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if cfg.Probe.Root != "" && !filepath.IsAbs(cfg.Probe.Root) {
		errs = append(errs, &FieldError{Field: "probe.root", Value: cfg.Probe.Root, Err: ErrInvalidPath})
	}
	for field, rel := range map[string]string{
		"probe.board_name_path": cfg.Probe.BoardNamePath,
		"probe.model_path":      cfg.Probe.ModelPath,
	} {
		if err := validateRelPath(rel); err != nil {
			errs = append(errs, &FieldError{Field: field, Value: rel, Err: err})
		}
	}

	if cfg.Priority.Default > MaxPriority {
		errs = append(errs, &FieldError{Field: "priority.default", Value: cfg.Priority.Default, Err: ErrPriorityRange})
	}

	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, &FieldError{Field: "log.level", Value: cfg.Log.Level, Err: ErrInvalidLogSetting})
	}
	switch logging.Format(cfg.Log.Format) {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, &FieldError{Field: "log.format", Value: cfg.Log.Format, Err: ErrInvalidLogSetting})
	}

	return errs
}

// validateRelPath checks a host-relative path. Empty means "use default".
func validateRelPath(path string) error {
	if path == "" {
		return nil
	}
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	cleaned := filepath.Clean(path)
	if cleaned == "." || filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return ErrInvalidPath
	}
	return nil
}

// FieldError represents an error for a specific config key.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
