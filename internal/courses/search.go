package courses

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"

	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
)

// minQueryLength is the shortest query that triggers a search.
const minQueryLength = 2

// DefaultSearchDelay is how long a Searcher waits after the last
// keystroke before running the search.
const DefaultSearchDelay = 300 * time.Millisecond

// Searcher debounces free-text course queries and drops stale results.
// Each call to Query restarts the debounce timer; once the timer fires
// the catalog search runs, and its results are delivered only if no
// newer query has been issued in the meantime. Queries shorter than
// minQueryLength clear the results immediately without searching.
//
// Searcher is for keystroke-driven clients that push results over a
// persistent connection, configured with the catalog search_debounce
// setting. The REST search endpoint stays synchronous and calls
// Catalog.Search directly.
type Searcher struct {
	catalog   *Catalog
	debounced func(func())
	deliver   func(query string, courses []models.Course)

	mu         sync.Mutex
	generation uint64
}

// NewSearcher builds a Searcher over the catalog. deliver is invoked
// with the results of each search that survives debouncing; it may be
// called from a background goroutine. A non-positive delay falls back
// to DefaultSearchDelay.
func NewSearcher(catalog *Catalog, delay time.Duration, deliver func(query string, courses []models.Course)) *Searcher {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	return &Searcher{
		catalog:   catalog,
		debounced: debounce.New(delay),
		deliver:   deliver,
	}
}

// Query registers a new search query. Short queries clear results
// immediately; anything else is debounced and searched once typing
// settles.
func (s *Searcher) Query(ctx context.Context, query string) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	if len(query) < minQueryLength {
		s.deliver(query, nil)
		return
	}

	s.debounced(func() {
		courses := s.catalog.Search(ctx, query)
		if s.stale(gen) {
			return
		}
		s.deliver(query, courses)
	})
}

func (s *Searcher) stale(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen != s.generation
}
