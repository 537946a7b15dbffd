// Package webpackconfig composes bundler configurations from named settings
// and named configuration producers.
//
// Settings live in <settings-dir>/<name>.settings.{yaml,yml,json,toml} and
// are optional. Every named settings object is laid over the base settings
// (name "app" by default), one level deep.
//
// Configurations come from a Go function added with [Register] or, failing
// that, from a template file <configs-dir>/<name>.config.{yaml,yml,json,toml}
// executed with text/template. The template sees .Name, .Mode, .Legacy,
// .Modern and .Settings. Configurations are mandatory: a name that resolves
// to nothing is an error.
//
// Several configurations are folded with a deep merge: mappings merge key by
// key, sequences concatenate and later scalars win.
//
// The directories and the base name come from the environment, read on every
// call:
//
//	GET_WEBPACK_CONFIG_BASE_CONFIG_NAME  (default "app")
//	GET_WEBPACK_CONFIG_SETTINGS_PATH     (default ./webpack-settings)
//	GET_WEBPACK_CONFIG_CONFIGS_PATH      (default ./webpack-configs)
//
// The package-level functions use a default [Client]; use [New] for one with
// explicit options, logger or registry.
package webpackconfig
