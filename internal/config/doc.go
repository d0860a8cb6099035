// Package config loads and validates hlsgrab's TOML configuration.
//
// Load resolves the config path (explicit flag, then
// ~/.config/hlsgrab/config.toml, then ./hlsgrab.toml), decodes it over the
// defaults, expands home-relative paths, and validates the result. A missing
// file is not an error; defaults apply.
package config
