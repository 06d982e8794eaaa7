package simapi

import (
	"context"
	"strings"
)

// maxRecentSearches caps the persisted recent-search history.
const maxRecentSearches = 5

// RecentSearches returns the persisted search history, most recent first.
// History access is plain storage plumbing on behalf of the search
// controller — no latency or failure injection applies.
func (c *Client) RecentSearches(ctx context.Context) []string {
	searches := []string{}
	c.loadDoc(ctx, KeyRecentSearches, &searches)
	return searches
}

// SaveRecentSearch records the query at the front of the history,
// deduplicated by exact match (a repeated query moves to the front instead
// of duplicating) and capped at five entries. Blank queries are ignored.
// The updated list is returned.
func (c *Client) SaveRecentSearch(ctx context.Context, query string) []string {
	if strings.TrimSpace(query) == "" {
		return c.RecentSearches(ctx)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	searches := []string{}
	c.loadDoc(ctx, KeyRecentSearches, &searches)
	updated := make([]string, 0, maxRecentSearches)
	updated = append(updated, query)
	for _, s := range searches {
		if s == query {
			continue
		}
		updated = append(updated, s)
		if len(updated) == maxRecentSearches {
			break
		}
	}
	if err := c.saveDoc(ctx, KeyRecentSearches, updated); err != nil {
		c.logf("WARN: simapi: persisting recent searches: %v", err)
	}
	return updated
}

// ClearRecentSearches drops the persisted history.
func (c *Client) ClearRecentSearches(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.Delete(ctx, KeyRecentSearches); err != nil {
		c.logf("WARN: simapi: clearing recent searches: %v", err)
	}
}
