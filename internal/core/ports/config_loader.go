package ports

import "go.trai.ch/regen/internal/core/domain"

// ConfigLoader loads the project manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the manifest at path and returns it with the workspace root
	// set to the manifest's directory.
	Load(path string) (*domain.Manifest, error)
}
