package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/cardtally-go/internal/api/request"
	"github.com/mcoot/cardtally-go/internal/api/response"
	"github.com/mcoot/cardtally-go/internal/model"
	"github.com/mcoot/cardtally-go/internal/services/session"
	"github.com/mcoot/cardtally-go/internal/services/share"
)

// ShareHandler handles share token endpoints
type ShareHandler struct {
	sessions *session.Controller
	baseURL  string
}

// NewShareHandler creates a new share handler. baseURL is the link
// prefix for generated share URLs; when empty, links are built from the
// request host.
func NewShareHandler(sessions *session.Controller, baseURL string) *ShareHandler {
	return &ShareHandler{sessions: sessions, baseURL: baseURL}
}

// Share handles GET /api/v1/sessions/{id}/share
func (h *ShareHandler) Share(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	found, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	token, err := share.Encode(found)
	if err != nil {
		WriteError(w, err)
		return
	}

	base := h.baseURL
	if base == "" {
		base = "http://" + r.Host + "/"
	}

	response.JSON(w, http.StatusOK, response.Share{
		Token: token,
		URL:   share.URL(base, token),
	})
}

// Import handles POST /api/v1/import
func (h *ShareHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req request.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	imported, err := h.sessions.Import(r.Context(), req.Token)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(imported))
}
