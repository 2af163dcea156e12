package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/cardtally-go/internal/api/request"
	"github.com/mcoot/cardtally-go/internal/api/response"
	"github.com/mcoot/cardtally-go/internal/storage"
)

// PreferenceHandler handles preference flag endpoints
type PreferenceHandler struct {
	storage storage.Storage
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(storage storage.Storage) *PreferenceHandler {
	return &PreferenceHandler{storage: storage}
}

// Get handles GET /api/v1/preferences/{key}
// Unset preferences read as disabled rather than erroring.
func (h *PreferenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	enabled, err := h.storage.GetPreference(r.Context(), key)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Preference{Key: key, Enabled: enabled})
}

// Set handles PUT /api/v1/preferences/{key}
func (h *PreferenceHandler) Set(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	var req request.SetPreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.storage.SetPreference(r.Context(), key, req.Enabled); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Preference{Key: key, Enabled: req.Enabled})
}
