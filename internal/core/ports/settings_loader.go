package ports

import "github.com/elharo/eclipse/internal/core/domain"

// SettingsLoader defines the interface for loading tool settings.
//
//go:generate mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load reads the settings file from the given working directory.
	// A missing file yields the defaults.
	Load(cwd string) (domain.Settings, error)
}
