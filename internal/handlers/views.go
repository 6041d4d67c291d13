package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labkeep-dev/labkeep/internal/middleware"
	"github.com/labkeep-dev/labkeep/internal/policy"
	"github.com/labkeep-dev/labkeep/internal/utils"
)

// renderError shows the generic error view naming the route the failed
// operation came from, mirroring how every create/delete failure is
// reported to the browser. Raw error details never reach the response.
func renderError(ctx *gin.Context, status int, site string) {
	ctx.HTML(status, "error.html", gin.H{"Site": site})
}

// currentUser pulls the authenticated user out of the gin context. The
// auth middleware guarantees it is present on protected routes; a miss
// means the route was wired without the middleware, so bail to login.
func currentUser(ctx *gin.Context) (middleware.AuthenticatedUser, bool) {
	user, err := utils.GetCurrentUser(ctx)
	if err != nil {
		ctx.Redirect(http.StatusSeeOther, "/login")
		ctx.Abort()
		return middleware.AuthenticatedUser{}, false
	}
	return user, true
}

// requireAllowed consults the policy table and silently bounces callers
// whose role is not entitled to the action back to the dashboard.
func requireAllowed(ctx *gin.Context, user middleware.AuthenticatedUser, resource policy.Resource, action policy.Action) bool {
	if policy.Allow(user.Role, resource, action) {
		return true
	}
	ctx.Redirect(http.StatusSeeOther, "/dashboard")
	ctx.Abort()
	return false
}
