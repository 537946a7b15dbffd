// Package config resolves the process-level options of get-webpack-config:
// the base settings name, the settings and configs directories and the log
// level.
//
// Options are assembled from several sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults (directories relative to the working directory)
//  2. Environment variables prefixed with GET_WEBPACK_CONFIG_
//  3. An optional JSON options file
//  4. Explicit overrides (command-line flags or library options)
//
// The environment is read on every call to [Load] or [GetOptions]; nothing
// is cached between calls.
package config
