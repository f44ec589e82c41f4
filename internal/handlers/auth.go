package handlers

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clipstream/backend/internal/auth"
	"github.com/clipstream/backend/internal/logging"
	"github.com/clipstream/backend/internal/middleware"
	"github.com/clipstream/backend/internal/models"
	"github.com/clipstream/backend/internal/repositories"
)

const minPasswordLength = 6

// AuthHandler implements user registration and authentication endpoints.
type AuthHandler struct {
	Users    UserStore
	Sessions SessionManager
	NowFunc  func() time.Time
}

// SignUp handles POST /auth/signup requests.
func (h AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	var req signUpRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.Warn("invalid signup payload", "error", err)
		respondError(ctx, w, http.StatusBadRequest, "Invalid request body", "validation_failed")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.Name == "" {
		respondError(ctx, w, http.StatusBadRequest, "Name is required", "validation_failed")
		return
	}
	if req.Email == "" {
		respondError(ctx, w, http.StatusBadRequest, "Email is required", "validation_failed")
		return
	}
	if req.Password == "" {
		respondError(ctx, w, http.StatusBadRequest, "Password is required", "validation_failed")
		return
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		logger.Warn("signup invalid email", "email", req.Email, "error", err)
		respondError(ctx, w, http.StatusBadRequest, "Invalid email format", "validation_failed")
		return
	}

	if len(req.Password) < minPasswordLength {
		logger.Warn("signup password too short", "email", req.Email)
		respondError(ctx, w, http.StatusBadRequest, "Password must be at least 6 characters", "validation_failed")
		return
	}

	if _, err := h.Users.FindByEmail(ctx, req.Email); err == nil {
		logger.Warn("signup existing account", "email", req.Email)
		respondError(ctx, w, http.StatusConflict, "Email already registered", "conflict")
		return
	} else if !errors.Is(err, repositories.ErrNotFound) {
		logger.Error("signup user lookup failed", "error", err, "email", req.Email)
		respondError(ctx, w, http.StatusInternalServerError, "Internal server error", "internal_error")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error("signup failed to hash password", "error", err)
		respondError(ctx, w, http.StatusInternalServerError, "Internal server error", "internal_error")
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		CreatedAt:    h.now(),
	}

	if err := h.Users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			logger.Warn("signup conflict", "email", req.Email)
			respondError(ctx, w, http.StatusConflict, "Email already registered", "conflict")
			return
		}
		logger.Error("signup failed to create user", "error", err, "email", req.Email)
		respondError(ctx, w, http.StatusInternalServerError, "Internal server error", "internal_error")
		return
	}

	respondJSON(ctx, w, http.StatusCreated, signUpResponse{
		Message: "User registered successfully",
		UserID:  user.ID,
	})
}

// Login handles POST /auth/login requests.
func (h AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.Warn("invalid login payload", "error", err)
		respondError(ctx, w, http.StatusBadRequest, "Invalid request body", "validation_failed")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" {
		respondError(ctx, w, http.StatusBadRequest, "Email is required", "validation_failed")
		return
	}
	if req.Password == "" {
		respondError(ctx, w, http.StatusBadRequest, "Password is required", "validation_failed")
		return
	}

	user, err := h.Users.FindByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			logger.Error("login user lookup failed", "error", err, "email", req.Email)
			respondError(ctx, w, http.StatusInternalServerError, "Internal server error", "internal_error")
			return
		}
		logger.Warn("login unknown email", "email", req.Email)
		respondError(ctx, w, http.StatusUnauthorized, "Invalid email or password", "invalid_credentials")
		return
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		logger.Warn("login password mismatch", "userId", user.ID)
		respondError(ctx, w, http.StatusUnauthorized, "Invalid email or password", "invalid_credentials")
		return
	}

	token, err := h.Sessions.Issue(user.ID)
	if err != nil {
		logger.Error("failed to issue session token", "error", err, "userId", user.ID)
		respondError(ctx, w, http.StatusInternalServerError, "Internal server error", "internal_error")
		return
	}

	respondJSON(ctx, w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   token,
		User: userProfile{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// Me handles GET /auth/me requests. The identity comes from the auth gate.
func (h AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	userID := middleware.UserIDFromContext(ctx)

	user, err := h.Users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Warn("profile user not found", "userId", userID)
			respondError(ctx, w, http.StatusNotFound, "User not found", "not_found")
			return
		}
		logger.Error("profile lookup failed", "error", err, "userId", userID)
		respondError(ctx, w, http.StatusInternalServerError, "Internal server error", "internal_error")
		return
	}

	respondJSON(ctx, w, http.StatusOK, profileResponse{
		User: userProfile{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
		},
	})
}

// Logout handles POST /auth/logout requests. Sessions are stateless, so there
// is nothing to invalidate server-side; the client discards its token and the
// token stays valid until natural expiry.
func (h AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), w, http.StatusOK, map[string]string{
		"message": "Logout successful",
	})
}

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type loginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    userProfile `json:"user"`
}

type profileResponse struct {
	User userProfile `json:"user"`
}

type userProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (h AuthHandler) now() time.Time {
	if h.NowFunc != nil {
		return h.NowFunc()
	}
	return time.Now().UTC()
}
