package practice

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// Catalog holds the interview templates fetched from the prep API. The list
// is replaced atomically on a successful load and is read-only between
// loads, so renderers may read it concurrently.
type Catalog struct {
	mu        sync.RWMutex
	source    CatalogSource
	templates []Template
}

func NewCatalog(source CatalogSource) *Catalog {
	return &Catalog{source: source}
}

// Load fetches the template list. On failure the current list (empty on the
// first load) stays visible and the condition surfaces as an unavailable
// catalog, not a fatal error.
func (c *Catalog) Load(ctx context.Context) error {
	templates, err := c.source.FetchInterviews(ctx)
	if err != nil {
		log.Printf("catalog: load failed: %v", err)
		return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	c.mu.Lock()
	c.templates = templates
	c.mu.Unlock()
	return nil
}

// List returns the templates in catalog order, as served.
func (c *Catalog) List() []Template {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}

func (c *Catalog) Get(id string) (Template, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.templates {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, ErrUnknownTemplate
}
