// Package simapi is the simulated backend facade: it presents a remote-API
// call surface while executing entirely against the in-process catalog and
// the local persistence adapter. Every operation suspends the caller for a
// fixed nominal delay and, before doing real work, may fail with an injected
// transient error at a small per-operation rate.
package simapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"techstore-service/internal/catalog"
	"techstore-service/internal/storage"
)

// Persisted document keys. These names are part of the storage contract
// and must not change.
const (
	KeyCart           = "techstore_cart"
	KeyOrders         = "techstore_orders"
	KeyWishlist       = "techstore_wishlist"
	KeyRecentSearches = "recentSearches"
)

// ErrProductNotFound is the "no such product" sentinel for GetProductByID,
// distinct from an injected transient failure.
var ErrProductNotFound = errors.New("simapi: product not found")

// Error is an injected transient fault. Message is the user-facing string
// callers surface in a retryable error banner; Op names the operation for
// logs and tests.
type Error struct {
	Op      string
	Message string
}

func (e *Error) Error() string { return e.Message }

// IsTransient reports whether err is an injected transient fault (as
// opposed to e.g. ErrProductNotFound or a context cancellation).
func IsTransient(err error) bool {
	var simErr *Error
	return errors.As(err, &simErr)
}

// opSpec pins down the simulated behavior of one operation: its nominal
// delay, its failure-injection rate, and the message an injected failure
// carries. Rates are independent across calls; there is no circuit breaker
// and no state carried between failures.
type opSpec struct {
	delay   time.Duration
	errRate float64
	message string
}

var ops = map[string]opSpec{
	"ListProducts":            {600 * time.Millisecond, 0.05, "Failed to fetch products"},
	"ListProductsByCategory":  {300 * time.Millisecond, 0.05, "Failed to fetch products by category"},
	"ListProductsByCategories": {400 * time.Millisecond, 0.05, "Failed to fetch products by categories"},
	"SearchProducts":          {400 * time.Millisecond, 0.05, "Search failed"},
	"GetProductByID":          {200 * time.Millisecond, 0.05, "Failed to fetch product"},
	"GetFeaturedProducts":     {300 * time.Millisecond, 0.05, "Failed to fetch featured products"},
	"GetPopularProducts":      {350 * time.Millisecond, 0.05, "Failed to fetch popular products"},
	"GetRelatedProducts":      {250 * time.Millisecond, 0.05, "Failed to fetch related products"},
	"ListCategories":          {200 * time.Millisecond, 0.05, "Failed to fetch categories"},
	"ListCategoryCounts":      {300 * time.Millisecond, 0.05, "Failed to fetch categories with counts"},
	"GetCart":                 {200 * time.Millisecond, 0.02, "Failed to load cart"},
	"AddToCart":               {300 * time.Millisecond, 0.03, "Failed to add item to cart"},
	"UpdateCartItem":          {250 * time.Millisecond, 0.03, "Failed to update cart item"},
	"RemoveFromCart":          {200 * time.Millisecond, 0.03, "Failed to remove item from cart"},
	"ClearCart":               {150 * time.Millisecond, 0.02, "Failed to clear cart"},
	"CreateOrder":             {1500 * time.Millisecond, 0.10, "Payment processing failed. Please try again."},
	"GetOrderHistory":         {500 * time.Millisecond, 0.05, "Failed to fetch order history"},
	// Wishlist operations are structurally identical to cart operations,
	// so they share the cart's rates.
	"GetWishlist":        {300 * time.Millisecond, 0.02, "Failed to load wishlist"},
	"AddToWishlist":      {200 * time.Millisecond, 0.03, "Failed to add item to wishlist"},
	"RemoveFromWishlist": {200 * time.Millisecond, 0.03, "Failed to remove item from wishlist"},
	// Availability and reviews are synthetic stubs with no failure path.
	"CheckAvailability": {150 * time.Millisecond, 0, ""},
	"GetProductReviews": {400 * time.Millisecond, 0, ""},
}

// Options tunes the simulation. The zero value disables latency (scale 0)
// and uses a clock-seeded RNG, which is what tests generally want; the
// server wires LatencyScale from configuration (1.0 for realistic timing).
type Options struct {
	// LatencyScale multiplies every nominal delay. 0 disables the latency
	// simulation entirely.
	LatencyScale float64
	// DisableFailures switches off random failure injection.
	DisableFailures bool
	// Seed seeds the internal RNG. 0 seeds from the clock.
	Seed int64
	// FailureSource, when set, replaces the uniform [0,1) draw used for
	// failure injection. Tests force the failure branch with a source that
	// returns 0 and the success branch with one that returns 1.
	FailureSource func() float64
	// StockSource, when set, replaces the synthetic stock generator (1..50).
	StockSource func() int
	// Now, when set, replaces the clock used for order ids and timestamps.
	Now func() time.Time
	// Logger receives warnings about swallowed persistence errors.
	// Defaults to the standard logger.
	Logger *log.Logger
}

// Client is the facade. Methods are safe for concurrent use: every
// read-modify-write of a persisted document is serialized by an internal
// mutex, so two overlapping cart updates cannot clobber each other within
// one process. (Writers in separate processes sharing a backend remain
// last-writer-wins; acceptable for a single-user demo.)
type Client struct {
	catalog *catalog.Catalog
	store   storage.Store
	opts    Options
	logf    func(format string, v ...interface{})

	mu sync.Mutex // guards read-modify-write sequences on persisted keys

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New creates a facade over the given catalog and persistence adapter.
func New(cat *catalog.Catalog, store storage.Store, opts Options) *Client {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logf := log.Printf
	if opts.Logger != nil {
		logf = opts.Logger.Printf
	}
	return &Client{
		catalog: cat,
		store:   store,
		opts:    opts,
		logf:    logf,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Catalog exposes the underlying read-only catalog.
func (c *Client) Catalog() *catalog.Catalog { return c.catalog }

// begin applies the cross-cutting behavior of every operation: suspend for
// the nominal delay, then draw for an injected failure. A non-nil return is
// either a context error or an *Error carrying the operation's message.
func (c *Client) begin(ctx context.Context, op string) error {
	spec, ok := ops[op]
	if !ok {
		// Unknown op means a programming error in this package.
		panic("simapi: unknown operation " + op)
	}
	if err := c.sleep(ctx, spec.delay); err != nil {
		return err
	}
	if spec.errRate > 0 && c.shouldFail(spec.errRate) {
		return &Error{Op: op, Message: spec.message}
	}
	return nil
}

func (c *Client) sleep(ctx context.Context, d time.Duration) error {
	scaled := time.Duration(float64(d) * c.opts.LatencyScale)
	if scaled <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(scaled)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) shouldFail(rate float64) bool {
	if c.opts.DisableFailures {
		return false
	}
	return c.uniform() < rate
}

func (c *Client) uniform() float64 {
	if c.opts.FailureSource != nil {
		return c.opts.FailureSource()
	}
	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	return c.rng.Float64()
}

func (c *Client) stock() int {
	if c.opts.StockSource != nil {
		return c.opts.StockSource()
	}
	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	return c.rng.Intn(50) + 1
}

func (c *Client) now() time.Time {
	if c.opts.Now != nil {
		return c.opts.Now()
	}
	return time.Now()
}

// loadDoc reads and unmarshals a persisted document into dest. An absent
// key or malformed JSON leaves dest untouched and reports ok=false;
// persistence corruption degrades to "empty", it never surfaces as an
// error.
func (c *Client) loadDoc(ctx context.Context, key string, dest interface{}) bool {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			c.logf("WARN: simapi: reading %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.logf("WARN: simapi: malformed document under %s, treating as empty: %v", key, err)
		return false
	}
	return true
}

// saveDoc marshals and persists a document.
func (c *Client) saveDoc(ctx context.Context, key string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, key, data)
}
