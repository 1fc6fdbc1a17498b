package handler

import (
	"net/http"

	"github.com/anbusan19/wealth-empire-sub001/internal/catalog"
)

// CatalogHandler serves the static questionnaire catalog
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// List handles GET /v1/questions
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions":  catalog.Questions(),
		"categories": catalog.Categories(),
	})
}
