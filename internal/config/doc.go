// Package config loads and merges ewgpal configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (EWGPAL_OUTPUT, EWGPAL_FONT_SIZE, EWGPAL_LOG_LEVEL)
//  3. Config file ($XDG_CONFIG_HOME/ewgpal/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config]; [Save] and [SetField] back the
// config subcommands.
package config
