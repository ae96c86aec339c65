package ports

import "github.com/elharo/eclipse/internal/core/domain"

// ViewLoader defines the interface for loading project views.
//
//go:generate mockgen -source=view_loader.go -destination=mocks/mock_view_loader.go -package=mocks
type ViewLoader interface {
	// Load parses the project view file at path, following its imports.
	Load(path string) (*domain.ProjectView, error)

	// LoadURL parses the project view at an http(s) URL, following its
	// imports relative to the URL.
	LoadURL(rawURL string) (*domain.ProjectView, error)
}
