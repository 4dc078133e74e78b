package server

import (
	"net/http"
	"strconv"

	"realty-catalog/internal/catalog"
	"realty-catalog/internal/common/logger"
	"realty-catalog/internal/service"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the catalog service over HTTP.
type Handler struct {
	svc    *service.Catalog
	logger logger.Logger
}

func NewHandler(svc *service.Catalog, log logger.Logger) *Handler {
	return &Handler{svc: svc, logger: log}
}

// ListListings handles GET /api/v1/listings?search=&type=&category=.
// Absent facets behave like the "all" sentinel.
func (h *Handler) ListListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := catalog.FilterParams{
		Search:      q.Get("search"),
		ListingType: q.Get("type"),
		Category:    q.Get("category"),
	}

	listings := h.svc.List(params)
	respondJSON(w, http.StatusOK, listingsResponse{Count: len(listings), Listings: listings})
}

// GetListing handles GET /api/v1/listings/{listingID}.
func (h *Handler) GetListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "listingID")

	listing, err := h.svc.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

// GetSimilar handles GET /api/v1/listings/{listingID}/similar?limit=N.
func (h *Handler) GetSimilar(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "listingID")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	listings, err := h.svc.Similar(r.Context(), id, limit)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listingsResponse{Count: len(listings), Listings: listings})
}

// ReloadCatalog handles POST /api/v1/catalog/reload.
func (h *Handler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.Reload(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reloadResponse{Listings: count})
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	listings := h.svc.List(catalog.FilterParams{})
	respondJSON(w, http.StatusOK, healthResponse{Status: "ok", Listings: len(listings)})
}
