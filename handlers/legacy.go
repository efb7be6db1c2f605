package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bobbygriffin/neuroflow/models"
	"github.com/bobbygriffin/neuroflow/repository"
)

// LegacyMoodHandler serves the pre-auth single-global-mood behavior, kept
// behind the LEGACY_MODE flag for backward compatibility: one shared mood
// row, read latest and overwrite in place, no user scoping.
type LegacyMoodHandler struct {
	repo   *repository.MoodRepository
	logger *slog.Logger
}

// NewLegacyMoodHandler creates a new handler
func NewLegacyMoodHandler(repo *repository.MoodRepository, logger *slog.Logger) *LegacyMoodHandler {
	return &LegacyMoodHandler{
		repo:   repo,
		logger: logger,
	}
}

// Get handles GET /mood in legacy mode, returning the single latest row.
func (h *LegacyMoodHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.repo.LatestGlobal(r.Context())
	if err != nil {
		h.logger.Error("failed to get latest mood", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Post handles POST /mood in legacy mode, overwriting the single mood row
// and echoing the result of Get.
func (h *LegacyMoodHandler) Post(w http.ResponseWriter, r *http.Request) {
	var req models.RecordMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Mood == "" {
		writeError(w, http.StatusBadRequest, "Mood is required")
		return
	}

	if err := h.repo.OverwriteGlobal(r.Context(), req.Mood); err != nil {
		h.logger.Error("failed to overwrite mood", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Get(w, r)
}
