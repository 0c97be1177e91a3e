// Package courses resolves course names to tee-level rating, slope and
// yardage data. Results come from a small built-in table plus an
// optional remote catalog; remote lookups are best-effort and never
// block or fail round entry.
package courses

import (
	"context"
	"log"

	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
)

// maxSearchResults caps a combined search result list.
const maxSearchResults = 10

// Provider resolves a free-text query to matching courses.
type Provider interface {
	Search(ctx context.Context, query string) ([]models.Course, error)
}

// Catalog combines course providers, listing local results before
// remote ones. Provider failures degrade to an empty contribution.
type Catalog struct {
	providers []Provider
}

// NewCatalog creates a catalog over the given providers, consulted in
// order.
func NewCatalog(providers ...Provider) *Catalog {
	return &Catalog{providers: providers}
}

// Search returns up to maxSearchResults courses matching query, in
// provider order. A failing provider contributes nothing; the caller
// never sees its error.
func (c *Catalog) Search(ctx context.Context, query string) []models.Course {
	var results []models.Course
	for _, p := range c.providers {
		if len(results) >= maxSearchResults {
			break
		}
		found, err := p.Search(ctx, query)
		if err != nil {
			log.Printf("course search provider error: %v", err)
			continue
		}
		results = append(results, found...)
	}
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return results
}

// Lookup resolves tee-level data for a course by ID. ok is false when
// the course or tee is unknown.
func (c *Catalog) Lookup(ctx context.Context, courseID, teeName string) (models.TeeInfo, bool) {
	for _, p := range c.providers {
		finder, canFind := p.(interface {
			FindByID(ctx context.Context, id string) (*models.Course, error)
		})
		if !canFind {
			continue
		}
		course, err := finder.FindByID(ctx, courseID)
		if err != nil {
			log.Printf("course lookup error: %v", err)
			continue
		}
		if course == nil {
			continue
		}
		if info, ok := course.Tee(teeName); ok {
			return info, true
		}
	}
	return models.TeeInfo{}, false
}
