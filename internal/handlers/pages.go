package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Calendar shows the booking calendar page.
func Calendar(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "calendar.html", nil)
}

// Settings and Profile are placeholders that fall back to the
// dashboard view.
func Settings(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "dashboard.html", nil)
}

func Profile(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "dashboard.html", nil)
}

// NotFound renders the 404 page for unknown routes.
func NotFound(ctx *gin.Context) {
	ctx.HTML(http.StatusNotFound, "404.html", nil)
}
