package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/cardtally-go/internal/api/request"
	"github.com/mcoot/cardtally-go/internal/api/response"
	"github.com/mcoot/cardtally-go/internal/model"
	"github.com/mcoot/cardtally-go/internal/services/score"
	"github.com/mcoot/cardtally-go/internal/services/session"
	"github.com/mcoot/cardtally-go/internal/services/stats"
)

// ScoreHandler handles score entry and derived view endpoints
type ScoreHandler struct {
	sessions *session.Controller
	scores   *score.Controller
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(sessions *session.Controller, scores *score.Controller) *ScoreHandler {
	return &ScoreHandler{sessions: sessions, scores: scores}
}

// ApplyRound handles POST /api/v1/sessions/{id}/rounds
// Score values arrive as raw text and are validated before any of the
// round is applied, so one bad entry rejects the whole request.
func (h *ScoreHandler) ApplyRound(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	var req request.ApplyRoundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	deltas := make(map[model.PlayerID]int, len(req.Scores))
	for playerID, text := range req.Scores {
		if !score.AcceptText(text) {
			WriteError(w, NewInvalidScoreError(fmt.Sprintf("invalid score %q for player %s", text, playerID)))
			return
		}
		deltas[model.PlayerID(playerID)] = score.ParseAmount(text)
	}

	updated, changed, err := h.scores.ApplyRound(r.Context(), id, deltas)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoundResult{
		Session: response.SessionFromModel(updated),
		Changed: changed,
	})
}

// UndoLast handles POST /api/v1/sessions/{id}/players/{pid}/undo
func (h *ScoreHandler) UndoLast(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.SessionID(vars["id"])
	playerID := model.PlayerID(vars["pid"])

	updated, changed, err := h.scores.UndoLast(r.Context(), id, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RoundResult{
		Session: response.SessionFromModel(updated),
		Changed: changed,
	})
}

// Summary handles GET /api/v1/sessions/{id}/summary
func (h *ScoreHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	found, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SummaryFromModel(found))
}

// Series handles GET /api/v1/sessions/{id}/series
func (h *ScoreHandler) Series(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	found, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	points := stats.BuildSeries(found.Players)
	response.JSON(w, http.StatusOK, response.Series{Points: points})
}

// Export handles GET /api/v1/sessions/{id}/export
func (h *ScoreHandler) Export(w http.ResponseWriter, r *http.Request) {
	id := model.SessionID(mux.Vars(r)["id"])

	found, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Export{Text: stats.FormatLeaderboard(found)})
}
