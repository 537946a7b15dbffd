package aggregator

//go:generate mockgen -source=interfaces.go -destination=../mock/config_loader_mock.go -package=mock

import "github.com/MKhiriev/get-webpack-config/models"

// ConfigLoader produces one named configuration. Implemented by
// *loader.Loader.
type ConfigLoader interface {
	Load(mode models.Mode, name string) (models.Configuration, error)
}
