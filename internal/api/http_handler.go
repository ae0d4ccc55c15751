package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"product-showcase-service/internal/catalog"
	"product-showcase-service/internal/domain"
)

// Response messages. Store failure details are logged by the catalog and never sent to clients.
const (
	msgProductIDRequired = "Product ID is required"
	msgProductNotFound   = "Product not found"
	msgFetchProducts     = "Failed to fetch products"
	msgFetchProduct      = "Failed to fetch product"
)

// ProductService is the set of catalog operations exposed by the transports.
type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
}

// HTTPHandler holds dependencies for HTTP handlers.
type HTTPHandler struct {
	products ProductService
}

// NewHTTPHandler creates a new HTTPHandler with dependencies.
func NewHTTPHandler(ps ProductService) *HTTPHandler {
	return &HTTPHandler{products: ps}
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
			// Headers are already written; nothing left to tell the client.
			log.Printf("ERROR: Failed to encode JSON response: %v", err)
		}
	}
}

// --- Product Handlers ---

func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, msgFetchProducts)
		return
	}
	if products == nil { // Always encode an array, never null
		products = []domain.Product{}
	}
	respondWithJSON(w, http.StatusOK, products)
}

func (h *HTTPHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if r.URL.RawPath != "" { // chi routes on the escaped path when one is set
		if unescaped, err := url.PathUnescape(productID); err == nil {
			productID = unescaped
		}
	}

	product, err := h.products.GetProductByID(r.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidArgument):
			respondWithError(w, http.StatusBadRequest, msgProductIDRequired)
		case errors.Is(err, catalog.ErrProductNotFound):
			respondWithError(w, http.StatusNotFound, msgProductNotFound)
		default:
			respondWithError(w, http.StatusInternalServerError, msgFetchProduct)
		}
		return
	}
	respondWithJSON(w, http.StatusOK, product)
}

// --- Route Registration ---

// RegisterRoutes sets up the HTTP routes for the service.
// A request for the collection root with a trailing slash is served by ListProducts.
func (h *HTTPHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)              // GET /api/products
		r.Get("/{productId}", h.GetProductByID) // GET /api/products/{productId}
	})
}
