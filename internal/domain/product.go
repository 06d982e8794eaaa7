package domain

// Product represents a single catalog entry.
// The json tags are the wire contract shared with the persisted documents,
// so a stored cart survives a swap to a real backend unchanged.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Category    string   `json:"category"` // case-insensitive grouping key, see Category.Slug
	Rating      float64  `json:"rating"`   // 0..5
	Features    []string `json:"features,omitempty"`
}

// HasFeature reports whether the product lists the given feature string.
func (p *Product) HasFeature(feature string) bool {
	for _, f := range p.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// Category is a declared product grouping. Slug is the lowercase URL-safe
// key products reference through their Category field; a product whose
// category matches no slug silently filters to nothing.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CategoryCount pairs a category value with the number of products carrying it.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Slug  string `json:"slug"`
}

// CartItem is one cart line. It embeds a full Product snapshot rather than
// an id, so catalog changes after add-to-cart never retroactively reprice
// lines already in the cart.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"` // >= 1 while the line exists; <= 0 means removal
}

// Availability is the synthetic stock check result. Stock is freshly
// randomized on every call; the value is not cached anywhere.
type Availability struct {
	Available bool `json:"available"`
	Stock     int  `json:"stock"`
}

// Review is a canned product review. The review feature is a stub: every
// product returns the same fixed list.
type Review struct {
	ID      int    `json:"id"`
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}
