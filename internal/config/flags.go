package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the option flags on fs and returns the [Options] they
// fill in once fs is parsed. Flags left unset stay zero, so the result can
// be passed straight to [Load] as overrides.
//
// Flags:
//
//	--base-name       base settings name
//	-s/--settings-path settings directory
//	-c/--configs-path  configs directory
//	--config          JSON options file path
//	--log-level       log level (debug, info, warn, error)
func BindFlags(fs *pflag.FlagSet) *Options {
	o := &Options{}

	fs.StringVar(&o.BaseConfigName, "base-name", "", `Base settings name (default "`+DefaultBaseConfigName+`")`)
	fs.StringVarP(&o.SettingsPath, "settings-path", "s", "", "Settings directory (default ./"+DefaultSettingsDir+")")
	fs.StringVarP(&o.ConfigsPath, "configs-path", "c", "", "Configs directory (default ./"+DefaultConfigsDir+")")
	fs.StringVar(&o.JSONFilePath, "config", "", "JSON options file path")
	fs.StringVar(&o.LogLevel, "log-level", "", `Log level (default "`+DefaultLogLevel+`")`)

	return o
}
