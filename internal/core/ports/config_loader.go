package ports

import "go.trai.ch/ecfg/internal/core/domain"

// ConfigLoader defines the interface for loading the task file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the task file from dir and returns the tasks with all paths resolved.
	Load(dir string) (*domain.Config, error)
}
