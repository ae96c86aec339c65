// Package cache provides a read-through cache around the project view
// parser.
package cache

import (
	"os"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/elharo/eclipse/internal/adapters/projectview"
	"github.com/elharo/eclipse/internal/core/domain"
	"github.com/elharo/eclipse/internal/core/ports"
)

// defaultSize is the number of parsed views kept in memory.
const defaultSize = 32

// entry pairs a parsed view with the stamps of the files it was built from.
type entry struct {
	view    *domain.ProjectView
	sources []projectview.Source
}

// ViewCache caches parsed project views keyed by the path they were requested
// under. A cached view is reused only while every file that contributed to it,
// imports included, keeps its recorded size and modification time.
type ViewCache struct {
	parser *projectview.Parser
	cache  *lru.Cache[string, entry]
}

var _ ports.ViewLoader = (*ViewCache)(nil)

// New creates a ViewCache around parser.
func New(parser *projectview.Parser) (*ViewCache, error) {
	c, err := lru.New[string, entry](defaultSize)
	if err != nil {
		return nil, err
	}
	return &ViewCache{parser: parser, cache: c}, nil
}

// Load returns the cached view for path while its sources are unchanged,
// otherwise parses afresh and recaches.
func (c *ViewCache) Load(path string) (*domain.ProjectView, error) {
	if cached, ok := c.cache.Get(path); ok && fresh(cached.sources) {
		return cached.view, nil
	}

	view, sources, err := c.parser.LoadWithSources(path)
	if err != nil {
		c.cache.Remove(path)
		return nil, err
	}
	c.cache.Add(path, entry{view: view, sources: sources})
	return view, nil
}

// LoadURL always parses; remote views carry no stamps to validate against.
func (c *ViewCache) LoadURL(rawURL string) (*domain.ProjectView, error) {
	return c.parser.LoadURL(rawURL)
}

// fresh reports whether every source file still matches its recorded stamp.
func fresh(sources []projectview.Source) bool {
	for _, src := range sources {
		info, err := os.Stat(src.Path)
		if err != nil {
			return false
		}
		if info.Size() != src.Size || !info.ModTime().Equal(src.ModTime) {
			return false
		}
	}
	return true
}
