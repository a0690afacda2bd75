// Package config loads the engine's two configuration surfaces (§4.14):
// scenario/calendar defaults from a TOML file, and process-level
// tunables (default seed, progress interval, log level, HTTP address)
// from a .env file and the environment. Loading validates eagerly —
// a malformed document surfaces as a ValidationError, never a panic.
package config
