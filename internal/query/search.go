package query

import (
	"context"
	"strings"
	"sync"

	"techstore-service/internal/domain"
	"techstore-service/internal/simapi"
)

// defaultSuggestions pad the suggestion list when the query is blank.
var defaultSuggestions = []string{"smartphones", "laptops", "audio", "gaming"}

// SearchAPI is the facade slice the search controller needs.
type SearchAPI interface {
	simapi.ProductAPI
	simapi.SearchHistoryAPI
}

// SearchController tracks search results, loading/error state, and the
// persisted recent-search history. Overlapping searches are generation
// fenced like ProductsFetcher.
type SearchController struct {
	api SearchAPI

	mu      sync.Mutex
	gen     uint64
	results []domain.Product
	loading bool
	errMsg  string
	recent  []string
}

// NewSearchController creates a controller and loads the persisted
// recent-search history once, up front.
func NewSearchController(ctx context.Context, api SearchAPI) *SearchController {
	return &SearchController{
		api:    api,
		recent: api.RecentSearches(ctx),
	}
}

// Search submits the query and blocks until it resolves. A blank query
// clears results and error without touching the backend. A search that
// returns at least one product is recorded in the recent-search history;
// fruitless or failed searches are not.
func (s *SearchController) Search(ctx context.Context, query string) {
	if strings.TrimSpace(query) == "" {
		s.mu.Lock()
		s.gen++ // supersede anything in flight
		s.results = nil
		s.errMsg = ""
		s.loading = false
		s.mu.Unlock()
		return
	}

	gen := s.start()
	results, err := s.api.SearchProducts(ctx, query)
	if err == nil && len(results) > 0 {
		s.api.SaveRecentSearch(ctx, query)
	}
	s.finish(ctx, gen, results, err, err == nil && len(results) > 0)
}

// SearchByCategory filters by category through the facade, sharing the
// controller's result and error state with free-text search.
func (s *SearchController) SearchByCategory(ctx context.Context, category string) {
	gen := s.start()
	results, err := s.api.ListProductsByCategory(ctx, category)
	s.finish(ctx, gen, results, err, false)
}

func (s *SearchController) start() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.loading = true
	s.errMsg = ""
	return s.gen
}

func (s *SearchController) finish(ctx context.Context, gen uint64, results []domain.Product, err error, savedRecent bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if savedRecent {
		// Refresh from the facade so concurrent controllers converge.
		s.recent = s.api.RecentSearches(ctx)
	}
	if gen != s.gen {
		return
	}
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
		s.results = nil // a failed search shows no stale hits
		return
	}
	s.results = results
}

// ClearSearch resets results and error, superseding any in-flight search.
func (s *SearchController) ClearSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.results = nil
	s.errMsg = ""
	s.loading = false
}

// ClearRecentSearches drops the history, both cached and persisted.
func (s *SearchController) ClearRecentSearches(ctx context.Context) {
	s.api.ClearRecentSearches(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent = nil
}

// Suggestions proposes completions for the query: with a blank query the
// recent searches plus a few stock categories, otherwise up to five
// distinct product names whose name or category contains the query.
// Suggestion lookups swallow backend failures and return nothing.
func (s *SearchController) Suggestions(ctx context.Context, query string) []string {
	if strings.TrimSpace(query) == "" {
		s.mu.Lock()
		recent := append([]string{}, s.recent...)
		s.mu.Unlock()
		return append(recent, defaultSuggestions...)
	}

	products, err := s.api.ListProducts(ctx)
	if err != nil {
		return nil
	}
	q := strings.ToLower(query)
	seen := make(map[string]struct{})
	var out []string
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			continue
		}
		if _, dup := seen[p.Name]; dup {
			continue
		}
		seen[p.Name] = struct{}{}
		out = append(out, p.Name)
		if len(out) == 5 {
			break
		}
	}
	return out
}

// Results returns the current result set.
func (s *SearchController) Results() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.results))
	copy(out, s.results)
	return out
}

// Loading reports whether a search is outstanding.
func (s *SearchController) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last failure message, or "".
func (s *SearchController) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// RecentSearches returns the cached history, most recent first.
func (s *SearchController) RecentSearches() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.recent...)
}
