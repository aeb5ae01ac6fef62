// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/waterlily/auth"
	"github.com/danielhkuo/waterlily/cliparse"
	"github.com/danielhkuo/waterlily/db"
	"github.com/danielhkuo/waterlily/middleware"
	"github.com/danielhkuo/waterlily/models"
	"github.com/danielhkuo/waterlily/store"
)

type AuthHandler struct {
	users  *store.UserStore
	issuer *auth.TokenIssuer
}

func NewAuthHandler(conn *sql.DB, cfg cliparse.Config, issuer *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{
		users:  store.NewUserStore(conn, db.Dialect(cfg.DatabaseType)),
		issuer: issuer,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}

	existing, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}
	if existing != nil {
		middleware.WriteError(w, r, store.ErrUserExists)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// A concurrent registration can still win the race; Create reports it as ErrUserExists
	user, err := h.users.Create(r.Context(), req.Name, req.Email, hash, req.IsAdmin)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	token, err := h.issuer.Issue(auth.Identity{ID: user.ID, Email: user.Email, IsAdmin: user.IsAdmin})
	if err != nil {
		slog.Error("failed to issue token", "user_id", user.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("user registered", "user_id", user.ID, "is_admin", user.IsAdmin)

	middleware.JSONResponse(w, http.StatusCreated, models.AuthResponse{
		User:  user.Info(),
		Token: token,
	})
}

// Login handles POST /api/auth/login
// Unknown email and wrong password get the same answer.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}
	if user == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := h.issuer.Issue(auth.Identity{ID: user.ID, Email: user.Email, IsAdmin: user.IsAdmin})
	if err != nil {
		slog.Error("failed to issue token", "user_id", user.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.Info("user logged in", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.AuthResponse{
		User:  user.Info(),
		Token: token,
	})
}

// Me handles GET /api/auth/me
// Requires middleware.Authenticate.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		middleware.WriteError(w, r, middleware.ErrUnauthorized)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MeResponse{
		ID:      id.ID,
		Email:   id.Email,
		IsAdmin: id.IsAdmin,
	})
}
