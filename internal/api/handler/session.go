package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/tealeaves/wordstats/internal/api/request"
	"github.com/tealeaves/wordstats/internal/api/response"
	"github.com/tealeaves/wordstats/internal/model"
	"github.com/tealeaves/wordstats/internal/services/session"
	"github.com/tealeaves/wordstats/internal/storage"
)

// SessionHandler handles game session endpoints
type SessionHandler struct {
	controller *session.Controller
	directory  storage.Directory
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller *session.Controller, directory storage.Directory) *SessionHandler {
	return &SessionHandler{
		controller: controller,
		directory:  directory,
	}
}

// Start handles POST /api/v1/games/start.
// Players start games by username; the directory resolves the ID.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.StartGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}

	player, err := h.directory.GetPlayerByUsername(r.Context(), req.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	s, err := h.controller.Start(r.Context(), player.ID, model.GameID(req.GameID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(s))
}

// Update handles POST /api/v1/games/update
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}
	playerID, err := uuid.Parse(req.PlayerID)
	if err != nil {
		WriteError(w, NewInvalidRequestError("player_id must be a UUID"))
		return
	}
	if req.Guess == "" {
		WriteError(w, NewInvalidRequestError("guess is required"))
		return
	}

	s, err := h.controller.Update(r.Context(), playerID, model.GameID(req.GameID), req.Guess)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// Restore handles GET /api/v1/games/restore
func (h *SessionHandler) Restore(w http.ResponseWriter, r *http.Request) {
	playerID, err := uuid.Parse(r.URL.Query().Get("player_id"))
	if err != nil {
		WriteError(w, NewInvalidRequestError("player_id must be a UUID"))
		return
	}
	gameID, err := parseGameID(r.URL.Query().Get("game_id"))
	if err != nil {
		WriteError(w, err)
		return
	}

	s, err := h.controller.Restore(r.Context(), playerID, gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// Complete handles POST /api/v1/games/complete.
// The caller supplies the answer checker's verdict.
func (h *SessionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req request.CompleteGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}
	playerID, err := uuid.Parse(req.PlayerID)
	if err != nil {
		WriteError(w, NewInvalidRequestError("player_id must be a UUID"))
		return
	}

	record, err := h.controller.Complete(r.Context(), playerID, model.GameID(req.GameID), req.Won)
	if err != nil {
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
