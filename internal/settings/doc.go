// Package settings finds per-name settings files and layers them.
//
// A settings file lives at <settings-dir>/<name>.settings.<ext>, where ext
// is one of yaml, yml, json or toml. Settings are optional: a missing or
// unreadable file never fails [Resolver.Resolve] or [Resolver.Combine]; use
// [Resolver.Lookup] to tell those cases apart.
package settings
