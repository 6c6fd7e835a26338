// Package config loads, normalizes, and validates Slate configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// SLATE_NTFY_TOPIC. The Config type centralizes every knob the CLI needs so
// output directories, external binaries, and notification credentials are
// discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
