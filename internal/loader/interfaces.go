package loader

//go:generate mockgen -source=interfaces.go -destination=../mock/settings_combiner_mock.go -package=mock

import "github.com/MKhiriev/get-webpack-config/models"

// SettingsCombiner yields the settings handed to a config producer.
// Implemented by *settings.Resolver.
type SettingsCombiner interface {
	Combine(name string) models.Settings
}
