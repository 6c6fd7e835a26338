// Package logging builds slog loggers from Slate configuration.
//
// Console (text) and JSON handlers are supported, with output fanned out to
// stderr and the configured log file. The attr helpers keep call sites free
// of direct slog imports.
package logging
