package commands

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/maa/internal/errors"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return errors.NewUserError(
		errors.Newf("unknown output format %q", format),
		"use one of: text, json, yaml")
}

// writeStructured encodes v as JSON or YAML. It reports false for text so
// the caller renders its own layout.
func writeStructured(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return true, errors.Wrap(err, "encoding JSON")
		}
		return true, nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, errors.Wrap(err, "encoding YAML")
		}
		return true, errors.Wrap(enc.Close(), "encoding YAML")
	}
	return false, nil
}
