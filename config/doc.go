// Package config provides an optional, layered run-configuration source:
// a YAML file wrapped as a type-safe map, read by the CLI before flags are
// applied on top of it.
//
// Precedence is always CLI flags > file values > built-in defaults; this
// package only implements the middle tier (file values), leaving the
// layering itself to the caller (see cmd/subiso).
package config
