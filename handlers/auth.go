package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/bobbygriffin/neuroflow/models"
	"github.com/bobbygriffin/neuroflow/repository"
	"github.com/bobbygriffin/neuroflow/token"
)

// AuthHandler handles authentication
type AuthHandler struct {
	userRepo  *repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userRepo *repository.UserRepository, jwtSecret []byte, tokenTTL time.Duration, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login handles POST /auth. On success the response carries a token whose
// subject is the user's id. Unknown usernames and wrong passwords share one
// generic message so the response never reveals which usernames exist.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.userRepo.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		h.logger.Error("failed to get user", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if user == nil || !h.userRepo.ValidatePassword(user, req.Password) {
		writeError(w, http.StatusUnauthorized, "bad username or password")
		return
	}

	tokenString, err := token.Issue(h.jwtSecret, user.ID, h.tokenTTL)
	if err != nil {
		h.logger.Error("failed to sign token", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logger.Info("user logged in", "username", user.Username)

	writeJSON(w, http.StatusOK, models.LoginResponse{Token: tokenString})
}
