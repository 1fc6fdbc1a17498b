package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/anbusan19/wealth-empire-sub001/internal/service"
)

// RegistryHandler handles company-registry lookup endpoints
type RegistryHandler struct {
	registrySvc *service.RegistryService
}

// NewRegistryHandler creates a new registry handler
func NewRegistryHandler(registrySvc *service.RegistryService) *RegistryHandler {
	return &RegistryHandler{registrySvc: registrySvc}
}

// Lookup handles GET /v1/registry/{cin}
func (h *RegistryHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	cin := mux.Vars(r)["cin"]

	profile, err := h.registrySvc.Lookup(r.Context(), cin)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCIN) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
