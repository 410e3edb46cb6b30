// Package config loads and validates the marquee configuration file.
// Configuration is TOML, located at ~/.config/marquee/config.toml by
// default, with environment fallbacks for the provider API keys
// (TMDB_API_KEY, OMDB_API_KEY). Missing keys are not an error: the
// gateway degrades to its offline sample catalog instead.
package config
