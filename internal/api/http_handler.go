package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"techstore-service/internal/simapi"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// HTTPHandler holds dependencies for the HTTP handlers. Each facade
// concern is injected as its own interface so tests can mock exactly the
// slice a handler uses.
type HTTPHandler struct {
	products simapi.ProductAPI
	cart     simapi.CartAPI
	orders   simapi.OrderAPI
	wishlist simapi.WishlistAPI
	searches simapi.SearchHistoryAPI
	validate *validator.Validate
}

// NewHTTPHandler creates an HTTPHandler over the facade surface.
func NewHTTPHandler(p simapi.ProductAPI, c simapi.CartAPI, o simapi.OrderAPI, w simapi.WishlistAPI, s simapi.SearchHistoryAPI) *HTTPHandler {
	return &HTTPHandler{
		products: p,
		cart:     c,
		orders:   o,
		wishlist: w,
		searches: s,
		validate: validator.New(),
	}
}

// --- Helpers ---

// ErrorResponse defines the structure for JSON error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("ERROR: Failed to encode JSON response: %v", err)
		}
	}
}

// respondFacadeError maps a facade error onto an HTTP status. Injected
// transient faults carry a user-facing message and map to 500 — the caller
// is expected to treat them as retryable, exactly like a flaky upstream.
func respondFacadeError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, simapi.ErrProductNotFound) {
		respondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	log.Printf("ERROR: %s failed: %v", op, err)
	respondWithError(w, http.StatusInternalServerError, err.Error())
}

// --- Product handlers ---

func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	// ?category=a&category=b narrows to a category set (case-sensitive
	// membership); without it the full catalog is returned.
	categories := r.URL.Query()["category"]
	if len(categories) > 0 {
		products, err := h.products.ListProductsByCategories(r.Context(), categories)
		if err != nil {
			respondFacadeError(w, "ListProductsByCategories", err)
			return
		}
		respondWithJSON(w, http.StatusOK, products)
		return
	}

	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		respondFacadeError(w, "ListProducts", err)
		return
	}
	respondWithJSON(w, http.StatusOK, products)
}

func (h *HTTPHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	products, err := h.products.SearchProducts(r.Context(), query)
	if err != nil {
		respondFacadeError(w, "SearchProducts", err)
		return
	}
	respondWithJSON(w, http.StatusOK, products)
}

func (h *HTTPHandler) GetFeaturedProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.GetFeaturedProducts(r.Context())
	if err != nil {
		respondFacadeError(w, "GetFeaturedProducts", err)
		return
	}
	respondWithJSON(w, http.StatusOK, products)
}

func (h *HTTPHandler) GetPopularProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.GetPopularProducts(r.Context())
	if err != nil {
		respondFacadeError(w, "GetPopularProducts", err)
		return
	}
	respondWithJSON(w, http.StatusOK, products)
}

func (h *HTTPHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	product, err := h.products.GetProductByID(r.Context(), productID)
	if err != nil {
		respondFacadeError(w, "GetProductByID", err)
		return
	}
	respondWithJSON(w, http.StatusOK, product)
}

func (h *HTTPHandler) GetRelatedProducts(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 4 // default limit
	}
	if limit > 20 {
		limit = 20
	}

	products, err := h.products.GetRelatedProducts(r.Context(), productID, limit)
	if err != nil {
		respondFacadeError(w, "GetRelatedProducts", err)
		return
	}
	respondWithJSON(w, http.StatusOK, products)
}

func (h *HTTPHandler) GetProductReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.products.GetProductReviews(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		respondFacadeError(w, "GetProductReviews", err)
		return
	}
	respondWithJSON(w, http.StatusOK, reviews)
}

func (h *HTTPHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	quantity, err := strconv.Atoi(r.URL.Query().Get("quantity"))
	if err != nil || quantity <= 0 {
		quantity = 1
	}

	availability, err := h.products.CheckAvailability(r.Context(), chi.URLParam(r, "productId"), quantity)
	if err != nil {
		respondFacadeError(w, "CheckAvailability", err)
		return
	}
	respondWithJSON(w, http.StatusOK, availability)
}

// --- Category handlers ---

func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.products.ListCategories(r.Context())
	if err != nil {
		respondFacadeError(w, "ListCategories", err)
		return
	}
	respondWithJSON(w, http.StatusOK, categories)
}

func (h *HTTPHandler) ListCategoryCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.products.ListCategoryCounts(r.Context())
	if err != nil {
		respondFacadeError(w, "ListCategoryCounts", err)
		return
	}
	respondWithJSON(w, http.StatusOK, counts)
}

func (h *HTTPHandler) ListProductsByCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	products, err := h.products.ListProductsByCategory(r.Context(), slug)
	if err != nil {
		respondFacadeError(w, "ListProductsByCategory", err)
		return
	}
	respondWithJSON(w, http.StatusOK, products)
}

// --- Cart handlers ---

func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.cart.GetCart(r.Context())
	if err != nil {
		respondFacadeError(w, "GetCart", err)
		return
	}
	respondWithJSON(w, http.StatusOK, items)
}

// CartAddInput defines the expected input for adding a cart line.
type CartAddInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"` // absent means 1
}

func (h *HTTPHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var input CartAddInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	ok, err := h.cart.AddToCart(r.Context(), input.ProductID, input.Quantity)
	if err != nil {
		respondFacadeError(w, "AddToCart", err)
		return
	}
	if !ok {
		// The facade reports false for an unknown product id (or a
		// swallowed persistence failure, indistinguishable by design).
		respondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

// CartUpdateInput defines the expected input for updating a cart line.
// A quantity of zero removes the line.
type CartUpdateInput struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

func (h *HTTPHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var input CartUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	ok, err := h.cart.UpdateCartItem(r.Context(), chi.URLParam(r, "productId"), input.Quantity)
	if err != nil {
		respondFacadeError(w, "UpdateCartItem", err)
		return
	}
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Failed to update cart item")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *HTTPHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	ok, err := h.cart.RemoveFromCart(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		respondFacadeError(w, "RemoveFromCart", err)
		return
	}
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Failed to remove item from cart")
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

func (h *HTTPHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ok, err := h.cart.ClearCart(r.Context())
	if err != nil {
		respondFacadeError(w, "ClearCart", err)
		return
	}
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Failed to clear cart")
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

// --- Order handlers ---

// OrderCreateInput carries the opaque customer details for checkout. The
// structure is passed through to the order record unvalidated.
type OrderCreateInput struct {
	CustomerInfo json.RawMessage `json:"customer_info"`
}

func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var input OrderCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	items, err := h.cart.GetCart(r.Context())
	if err != nil {
		respondFacadeError(w, "GetCart", err)
		return
	}
	if len(items) == 0 {
		respondWithError(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	result, err := h.orders.CreateOrder(r.Context(), items, input.CustomerInfo)
	if err != nil {
		respondFacadeError(w, "CreateOrder", err)
		return
	}
	if !result.Success {
		// Declined checkout is a business outcome, not a server fault.
		respondWithJSON(w, http.StatusPaymentRequired, result)
		return
	}
	respondWithJSON(w, http.StatusCreated, result)
}

func (h *HTTPHandler) GetOrderHistory(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.GetOrderHistory(r.Context())
	if err != nil {
		respondFacadeError(w, "GetOrderHistory", err)
		return
	}
	respondWithJSON(w, http.StatusOK, orders)
}

// --- Wishlist handlers ---

func (h *HTTPHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	products, err := h.wishlist.GetWishlist(r.Context())
	if err != nil {
		respondFacadeError(w, "GetWishlist", err)
		return
	}
	respondWithJSON(w, http.StatusOK, products)
}

func (h *HTTPHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	ok, err := h.wishlist.AddToWishlist(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		respondFacadeError(w, "AddToWishlist", err)
		return
	}
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Failed to add item to wishlist")
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

func (h *HTTPHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	ok, err := h.wishlist.RemoveFromWishlist(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		respondFacadeError(w, "RemoveFromWishlist", err)
		return
	}
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "Failed to remove item from wishlist")
		return
	}
	respondWithJSON(w, http.StatusNoContent, nil)
}

// --- Search history handlers ---

func (h *HTTPHandler) GetRecentSearches(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.searches.RecentSearches(r.Context()))
}

func (h *HTTPHandler) ClearRecentSearches(w http.ResponseWriter, r *http.Request) {
	h.searches.ClearRecentSearches(r.Context())
	respondWithJSON(w, http.StatusNoContent, nil)
}

// --- Route registration ---

// RegisterRoutes sets up the HTTP routes for the service.
func (h *HTTPHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		// Fixed segments must register before {productId}.
		r.Get("/search", h.SearchProducts)
		r.Get("/featured", h.GetFeaturedProducts)
		r.Get("/popular", h.GetPopularProducts)

		r.Route("/{productId}", func(r chi.Router) {
			r.Get("/", h.GetProductByID)
			r.Get("/related", h.GetRelatedProducts)
			r.Get("/reviews", h.GetProductReviews)
			r.Get("/availability", h.CheckAvailability)
		})
	})

	r.Route("/api/v1/categories", func(r chi.Router) {
		r.Get("/", h.ListCategories)
		r.Get("/counts", h.ListCategoryCounts)
		r.Get("/{slug}/products", h.ListProductsByCategory)
	})

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Post("/items", h.AddToCart)
		r.Put("/items/{productId}", h.UpdateCartItem)
		r.Delete("/items/{productId}", h.RemoveFromCart)
	})

	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.GetOrderHistory)
	})

	r.Route("/api/v1/wishlist", func(r chi.Router) {
		r.Get("/", h.GetWishlist)
		r.Post("/{productId}", h.AddToWishlist)
		r.Delete("/{productId}", h.RemoveFromWishlist)
	})

	r.Route("/api/v1/search/recent", func(r chi.Router) {
		r.Get("/", h.GetRecentSearches)
		r.Delete("/", h.ClearRecentSearches)
	})
}
