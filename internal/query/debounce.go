package query

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounce is the delay applied when none is configured.
const DefaultDebounce = 300 * time.Millisecond

// DebouncedSearch wraps a SearchController with input debouncing: every
// query change (re)starts a fixed-delay timer, and only the value present
// when the timer fires reaches the facade. A change before expiry cancels
// the pending fire, so no stale pending query is ever dispatched; a search
// already in flight when a newer one fires is not cancelled, but its
// response is discarded by the controller's generation fence.
type DebouncedSearch struct {
	*SearchController

	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
	query string
	wg    sync.WaitGroup
}

// NewDebouncedSearch wraps the controller. A delay of 0 or below uses
// DefaultDebounce.
func NewDebouncedSearch(ctrl *SearchController, delay time.Duration) *DebouncedSearch {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &DebouncedSearch{SearchController: ctrl, delay: delay}
}

// SetQuery records the query and restarts the debounce timer. The search
// dispatched on expiry runs on its own goroutine with the given context.
func (d *DebouncedSearch) SetQuery(ctx context.Context, query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.query = query
	if d.timer != nil && d.timer.Stop() {
		d.wg.Done() // cancelled a pending fire
	}
	d.wg.Add(1)
	d.timer = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.mu.Lock()
		q := d.query
		d.mu.Unlock()
		d.Search(ctx, q)
	})
}

// Query returns the most recently set query, whether or not it has been
// submitted yet.
func (d *DebouncedSearch) Query() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.query
}

// Stop cancels any pending (not yet fired) search. An already dispatched
// search runs to completion.
func (d *DebouncedSearch) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		if d.timer.Stop() {
			d.wg.Done()
		}
		d.timer = nil
	}
}

// Wait blocks until any pending timer has fired and its search has
// completed. Test helper.
func (d *DebouncedSearch) Wait() {
	d.wg.Wait()
}
