// Package config loads, normalizes, and validates contentindex configuration.
//
// It supplies repository defaults, reads an optional TOML file, loads a .env
// file when present, and honours environment fallbacks such as
// CONTENTINDEX_LOG_LEVEL. Paths stay relative to the project root in the
// returned Config; use the Resolve helpers to obtain absolute locations.
package config
