// Package logging assembles structured slog loggers for gitmarks.
//
// It owns the console and JSON handlers, maps the LOG_LEVEL and LOG_FORMAT
// settings onto them, and exposes helpers for component and run_id tagging.
// Output defaults to stderr so interactive prompts on stdout are not
// interleaved with log lines. A no-op logger is provided for tests.
package logging
