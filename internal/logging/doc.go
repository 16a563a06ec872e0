// Package logging builds the slog loggers used by maa.
//
// Text output goes through [Handler], a compact one-line format with
// optional colors. JSON output uses [slog.JSONHandler]. [Config.File]
// adds a second JSON stream through [MultiHandler], which is how
// --log-file works.
//
// Levels follow slog, plus [LevelTrace] for per-syscall detail.
// [LevelFromVerbosity] maps -v counts; [ParseLevel] reads config values.
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(2),
//		Format: logging.FormatText,
//		Color:  logging.ColorAuto,
//	})
//
// Tests use [ForTest], which routes records to t.Log.
package logging
