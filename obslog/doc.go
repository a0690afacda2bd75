// Package obslog sets up structured, leveled logging for the engine's
// long-lived components (CLI, HTTP transport, Monte Carlo driver): a
// zerolog logger with a TTY-aware console sink and a rotating file sink.
// Ambient only — never imported by the pure computation packages.
package obslog
