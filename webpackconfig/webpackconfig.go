package webpackconfig

import (
	"github.com/MKhiriev/get-webpack-config/models"
)

var (
	// DefaultRegistry holds the producers added with [Register].
	DefaultRegistry = NewRegistry()

	defaultClient = New(WithRegistry(DefaultRegistry))
)

// Register adds a configuration producer for name to [DefaultRegistry]. It is
// meant to be called from init functions.
func Register(name string, fn models.ConfigFunc) {
	DefaultRegistry.Register(name, fn)
}

// GetWebpackSettings returns the settings stored for name, or empty settings.
func GetWebpackSettings(name string) models.Settings {
	return defaultClient.Settings(name)
}

// GetLegacyWebpackConfig returns the legacy configuration for name.
func GetLegacyWebpackConfig(name string) (models.Configuration, error) {
	return defaultClient.LegacyConfig(name)
}

// GetModernWebpackConfig returns the modern configuration for name.
func GetModernWebpackConfig(name string) (models.Configuration, error) {
	return defaultClient.ModernConfig(name)
}

// BuildWebpackConfigs merges the modern configurations of names.
func BuildWebpackConfigs(names ...string) (models.Configuration, error) {
	return defaultClient.BuildConfigs(names...)
}

// LegacyWebpackConfigs merges the legacy configurations of names.
func LegacyWebpackConfigs(names ...string) (models.Configuration, error) {
	return defaultClient.LegacyConfigs(names...)
}

// ModernWebpackConfigs merges the modern configurations of names.
func ModernWebpackConfigs(names ...string) (models.Configuration, error) {
	return defaultClient.ModernConfigs(names...)
}
