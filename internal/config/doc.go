// SPDX-License-Identifier: MPL-2.0

// Package config handles ertkw configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/ertkw/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/ertkw/config.cue on macOS, %APPDATA%\ertkw\config.cue
// on Windows), then ./config.cue, falling back to built-in defaults. ERTKW_* environment
// variables override file values (ERTKW_LOG_LEVEL sets log.level).
//
// Files are validated against the embedded CUE schema (config_schema.cue) before
// they are merged, so errors point at the offending field.
package config
