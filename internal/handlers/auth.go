package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labkeep-dev/labkeep/internal/auth"
	"github.com/labkeep-dev/labkeep/internal/models"
	"github.com/labkeep-dev/labkeep/internal/store"
	"github.com/labkeep-dev/labkeep/internal/types"
	"go.uber.org/zap"
)

// CredentialStore is the account store surface the auth handler needs.
type CredentialStore interface {
	Register(ctx context.Context, username, email, rawPassword string) (models.User, error)
	Authenticate(ctx context.Context, username, rawPassword string) (models.User, error)
}

type AuthHandler struct {
	users  CredentialStore
	tokens *auth.Service
	logger *zap.Logger
}

func NewAuthHandler(users CredentialStore, tokens *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, logger: logger}
}

type LoginRequest struct {
	Username string `form:"username" binding:"required,min=4,max=15"`
	Password string `form:"password" binding:"required,min=8,max=80"`
	Remember bool   `form:"remember"`
}

type SignupRequest struct {
	Username string `form:"username" binding:"required,min=4,max=15"`
	Email    string `form:"email" binding:"required,email,max=50"`
	Password string `form:"password" binding:"required,min=8,max=80"`
}

func (h *AuthHandler) Index(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "index.html", nil)
}

func (h *AuthHandler) ShowLogin(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login.html", nil)
}

// Login checks the submitted credentials and establishes a session on
// success. Every failure shows the same message so the response does
// not reveal whether the username or the password was wrong.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.HTML(http.StatusBadRequest, "login.html", gin.H{"Error": "Invalid username or password"})
		return
	}

	user, err := h.users.Authenticate(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.Error("authenticate failed", zap.Error(err))
			renderError(ctx, http.StatusInternalServerError, "/login")
			return
		}
		ctx.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": "Invalid username or password"})
		return
	}

	token, ttl, err := h.tokens.Issue(user, req.Remember)
	if err != nil {
		h.logger.Error("failed to issue session token", zap.Error(err))
		renderError(ctx, http.StatusInternalServerError, "/login")
		return
	}

	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     types.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	ctx.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *AuthHandler) ShowSignup(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "signup.html", nil)
}

// Signup registers a new account with the user role. Duplicate
// usernames or emails leave the store untouched.
func (h *AuthHandler) Signup(ctx *gin.Context) {
	var req SignupRequest
	if err := ctx.ShouldBind(&req); err != nil {
		renderError(ctx, http.StatusBadRequest, "/signup")
		return
	}

	user, err := h.users.Register(ctx.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate), errors.Is(err, store.ErrValidation):
			renderError(ctx, http.StatusBadRequest, "/signup")
		default:
			h.logger.Error("failed to register user", zap.Error(err))
			renderError(ctx, http.StatusInternalServerError, "/signup")
		}
		return
	}

	h.logger.Info("user registered", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	ctx.HTML(http.StatusCreated, "new_user.html", gin.H{"Name": user.Username})
}

// Logout clears the session cookie; the middleware resolves no user for
// subsequent requests from this browser.
func (h *AuthHandler) Logout(ctx *gin.Context) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     types.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	ctx.Redirect(http.StatusSeeOther, "/")
}

// Dashboard greets the logged-in user by name.
func (h *AuthHandler) Dashboard(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	ctx.HTML(http.StatusOK, "dashboard.html", gin.H{"Name": user.Username})
}
