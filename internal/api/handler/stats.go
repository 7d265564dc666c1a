package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/tealeaves/wordstats/internal/api/request"
	"github.com/tealeaves/wordstats/internal/api/response"
	"github.com/tealeaves/wordstats/internal/dependencies/clock"
	"github.com/tealeaves/wordstats/internal/model"
	"github.com/tealeaves/wordstats/internal/services/stats"
)

// StatsHandler handles statistics and record ingest endpoints
type StatsHandler struct {
	service *stats.Service
	clock   clock.Clock
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service *stats.Service, clock clock.Clock) *StatsHandler {
	return &StatsHandler{
		service: service,
		clock:   clock,
	}
}

// PlayerStats handles GET /api/v1/players/{player_id}/stats
func (h *StatsHandler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	playerID, err := uuid.Parse(mux.Vars(r)["player_id"])
	if err != nil {
		WriteError(w, NewInvalidRequestError("player_id must be a UUID"))
		return
	}

	result, err := h.service.PlayerStats(r.Context(), playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// CreateRecord handles POST /api/v1/records
func (h *StatsHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}
	playerID, err := uuid.Parse(req.PlayerID)
	if err != nil {
		WriteError(w, NewInvalidRequestError("player_id must be a UUID"))
		return
	}

	finished := h.clock.Now().UTC()
	if req.Finished != "" {
		finished, err = time.Parse(time.RFC3339, req.Finished)
		if err != nil {
			WriteError(w, NewInvalidRequestError("finished must be RFC 3339"))
			return
		}
	}

	record := &model.GameRecord{
		PlayerID: playerID,
		GameID:   model.GameID(req.GameID),
		Finished: finished,
		Guesses:  req.Guesses,
		Won:      req.Won,
	}
	if err := h.service.RecordGame(r.Context(), record); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RecordCreated{
		PlayerID: record.PlayerID.String(),
		GameID:   int64(record.GameID),
		Guesses:  record.Guesses,
		Won:      record.Won,
	})
}

// parseGameID parses a game_id query parameter
func parseGameID(raw string) (model.GameID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, NewInvalidRequestError("game_id must be an integer")
	}
	return model.GameID(id), nil
}
