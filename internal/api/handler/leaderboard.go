package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mfield/memorymatch/internal/api/apierr"
	"github.com/mfield/memorymatch/internal/api/request"
	"github.com/mfield/memorymatch/internal/api/response"
	"github.com/mfield/memorymatch/internal/model"
	"github.com/mfield/memorymatch/internal/services/rank"
)

// LeaderboardHandler handles the leaderboard endpoints
type LeaderboardHandler struct {
	rank rank.ControllerInterface
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(rankController rank.ControllerInterface) *LeaderboardHandler {
	return &LeaderboardHandler{
		rank: rankController,
	}
}

// List handles GET /api/leaderboard
func (h *LeaderboardHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", rank.DefaultListLimit)
	offset := queryInt(r, "offset", 0)

	entries, err := h.rank.List(r.Context(), limit, offset)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EntriesFromModel(entries))
}

// Submit handles POST /api/leaderboard
func (h *LeaderboardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, decodeError(err))
		return
	}

	if req.Score == nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("score must be a non-negative integer."))
		return
	}
	finished := req.FinishedSeconds()
	if finished == nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("finishedTime (or time) must be a non-negative integer."))
		return
	}

	entry, err := h.rank.Submit(r.Context(), req.Name, *req.Score, *finished)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.EntryFromModel(entry))
}

// Standing handles GET /api/leaderboard/standing/{name}
func (h *LeaderboardHandler) Standing(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	standing, totalPlayers, err := h.rank.StandingFor(r.Context(), name)
	if err != nil {
		if errors.Is(err, model.ErrNoScoresForPlayer) {
			apierr.WriteNotFoundWithPlayers(w, "No scores found for this player.", totalPlayers)
			return
		}
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StandingFromModel(standing, totalPlayers))
}

// Stats handles GET /api/leaderboard/stats
func (h *LeaderboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.rank.Stats(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StatsFromModel(stats))
}

// DBStatus handles GET /api/db-status
func (h *LeaderboardHandler) DBStatus(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.DBStatus{
		ReadyState: h.rank.ReadyState(r.Context()),
	})
}

// decodeError maps a body decode failure onto the field-specific
// validation message where the failing field is known
func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch typeErr.Field {
		case "score":
			return apierr.NewInvalidRequestError("score must be a non-negative integer.")
		case "finishedTime", "time":
			return apierr.NewInvalidRequestError("finishedTime (or time) must be a non-negative integer.")
		case "name":
			return apierr.NewInvalidRequestError("name is required and must be 1-40 chars.")
		}
	}
	return apierr.NewInvalidRequestError("invalid request body")
}

// queryInt parses an integer query parameter, falling back on absence or
// a malformed value
func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
