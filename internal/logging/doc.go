// Package logging assembles structured slog loggers and formatting helpers used
// across monserial.
//
// Log output never goes to stdout: stdout carries the listing and set lines
// that scripts consume, so handlers write to stderr and, optionally, a log
// file. The package also provides a no-op logger for tests and wiring code
// that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits the same shape of data.
package logging
