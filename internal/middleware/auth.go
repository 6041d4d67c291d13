package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labkeep-dev/labkeep/internal/auth"
	"github.com/labkeep-dev/labkeep/internal/models"
	"github.com/labkeep-dev/labkeep/internal/types"
)

// AuthenticatedUser is the slice of the user record that handlers need
// per request. The session holds an id reference, never mutable state.
type AuthenticatedUser struct {
	ID       uint
	Username string
	Role     models.Role
}

// UserFinder resolves a session's user id back to the stored account.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (models.User, error)
}

// RequireAuth resolves the session cookie to a user and stashes it in
// the gin context. Browsers without a valid session are redirected to
// the login page, matching the rest of the form-driven UI.
func RequireAuth(tokens *auth.Service, users UserFinder) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := ctx.Cookie(types.SessionCookie)
		if err != nil || tokenString == "" {
			redirectToLogin(ctx)
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			redirectToLogin(ctx)
			return
		}

		user, err := users.FindByID(ctx.Request.Context(), claims.UserID)
		if err != nil {
			redirectToLogin(ctx)
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		})
		ctx.Next()
	}
}

func redirectToLogin(ctx *gin.Context) {
	ctx.Redirect(http.StatusSeeOther, "/login")
	ctx.Abort()
}
