package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bobbygriffin/neuroflow/middleware"
	"github.com/bobbygriffin/neuroflow/models"
	"github.com/bobbygriffin/neuroflow/repository"
)

// MoodHandler handles the authenticated mood endpoints. Every query is
// scoped to the user id carried by the validated token.
type MoodHandler struct {
	repo   *repository.MoodRepository
	logger *slog.Logger
}

// NewMoodHandler creates a new handler
func NewMoodHandler(repo *repository.MoodRepository, logger *slog.Logger) *MoodHandler {
	return &MoodHandler{
		repo:   repo,
		logger: logger,
	}
}

// ListRecent handles GET /mood. A user with no entries gets an empty
// mapping, not an error.
func (h *MoodHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	moods, err := h.repo.ListRecent(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list moods", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, moods)
}

// Record handles POST /mood. It inserts an entry owned by the authenticated
// user, then responds exactly like ListRecent so the client sees the entry
// it just created.
func (h *MoodHandler) Record(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.RecordMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Mood == "" {
		writeError(w, http.StatusBadRequest, "Mood is required")
		return
	}

	h.logger.Info("recording mood", "user_id", userID)

	if err := h.repo.Record(r.Context(), userID, req.Mood); err != nil {
		h.logger.Error("failed to record mood", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	moods, err := h.repo.ListRecent(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list moods", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, moods)
}
