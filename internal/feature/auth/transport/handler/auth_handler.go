// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"todolist_backend/internal/feature/auth/domain/entity"
	"todolist_backend/internal/feature/auth/transport/http/dto"
	"todolist_backend/internal/feature/auth/transport/middleware"
	"todolist_backend/internal/feature/auth/usecase"
	"todolist_backend/internal/shared/httpapi"
)

// SessionCookieName is the name of the HTTP-only session cookie.
const SessionCookieName = "todo_session"

// AuthUsecase defines the usecase operations for authentication.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user and establishes a session for it.
	Register(ctx context.Context, email, password, displayName string, client usecase.ClientInfo) (*entity.User, *entity.Session, error)
	// Login authenticates a user and establishes a session on success.
	Login(ctx context.Context, email, password string, client usecase.ClientInfo) (*entity.User, *entity.Session, error)
	// CurrentUser returns the user a resolved session belongs to.
	CurrentUser(ctx context.Context, userID uint) (*entity.User, error)
	// Logout destroys a session; destroying a missing session is not an error.
	Logout(ctx context.Context, sessionID string) error
	// UpdateProfile applies a partial profile update.
	UpdateProfile(ctx context.Context, userID uint, update usecase.ProfileUpdate) (*entity.User, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/auth/register.
// - 400 with per-field messages on validation failure
// - 400 on duplicate email
// - 201 with the created user (credential excluded) on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{
			Message: "Validation failed",
			Errors:  httpapi.ValidationErrors(err),
		})
		return
	}

	user, session, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.DisplayName, clientInfo(c))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("register failed: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Message: "User already exists with this email"})
		case errors.Is(err, usecase.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Message: err.Error()})
		default:
			slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Message: "Server error"})
		}
		return
	}

	setSessionCookie(c, session)
	slog.Info("user registered", "user_id", user.ID, "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Login handles POST /api/auth/login.
// The failure message is identical for unknown email and wrong password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{
			Message: "Validation failed",
			Errors:  httpapi.ValidationErrors(err),
		})
		return
	}

	user, session, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, clientInfo(c))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{Message: "Invalid credentials"})
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Message: "Server error"})
		return
	}

	setSessionCookie(c, session)
	slog.Info("user login successful", "user_id", user.ID, "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Logout handles POST /api/auth/logout. Idempotent: logging out without
// a live session still succeeds, and the cookie is always cleared.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, _ := c.Cookie(SessionCookieName)
	if err := h.auth.Logout(c.Request.Context(), sessionID); err != nil {
		slog.Error("logout failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Message: "Error logging out"})
		return
	}

	clearSessionCookie(c)
	c.JSON(http.StatusOK, httpapi.MessageResponse{Message: "Logged out successfully"})
}

// Me handles GET /api/auth/me. Requires the auth middleware.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	user, err := h.auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, httpapi.ErrorResponse{Message: "User not found"})
			return
		}
		slog.Error("current user lookup failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Message: "Server error"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /api/auth/profile. Requires the auth
// middleware. Only supplied fields change.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserID)

	var req dto.ProfileUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpapi.ErrorResponse{
			Message: "Validation failed",
			Errors:  httpapi.ValidationErrors(err),
		})
		return
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), userID, usecase.ProfileUpdate{
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, httpapi.ErrorResponse{Message: "User not found"})
			return
		}
		slog.Error("profile update failed", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, httpapi.ErrorResponse{Message: "Server error"})
		return
	}

	slog.Info("profile updated", "user_id", user.ID)
	c.JSON(http.StatusOK, user)
}

// clientInfo extracts the request metadata recorded on new sessions.
func clientInfo(c *gin.Context) usecase.ClientInfo {
	return usecase.ClientInfo{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	}
}

// setSessionCookie writes the HTTP-only session cookie.
// SameSite=Lax and a 24h max age per the session contract.
func setSessionCookie(c *gin.Context, session *entity.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, session.ID, int(usecase.SessionTTL.Seconds()), "/", "", false, true)
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}
