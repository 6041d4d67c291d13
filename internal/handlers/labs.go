package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labkeep-dev/labkeep/internal/models"
	"github.com/labkeep-dev/labkeep/internal/policy"
	"github.com/labkeep-dev/labkeep/internal/store"
	"go.uber.org/zap"
)

type LabRepository interface {
	List(ctx context.Context) ([]models.Lab, error)
	Create(ctx context.Context, lab models.Lab) (models.Lab, error)
	Delete(ctx context.Context, id uint) error
}

type LabsHandler struct {
	labs   LabRepository
	logger *zap.Logger
}

func NewLabsHandler(labs LabRepository, logger *zap.Logger) *LabsHandler {
	return &LabsHandler{labs: labs, logger: logger}
}

type CreateLabRequest struct {
	ID   uint   `form:"labId" binding:"required"`
	Name string `form:"labName"`
	Type string `form:"labType"`
}

type DeleteLabRequest struct {
	ID uint `form:"labId" binding:"required"`
}

// Show lists all labs. Admins get the management view with the create
// and delete forms; everyone else gets the read-only view.
func (h *LabsHandler) Show(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	labs, err := h.labs.List(ctx.Request.Context())
	if err != nil {
		h.logger.Error("failed to list labs", zap.Error(err))
		renderError(ctx, http.StatusInternalServerError, "/labs")
		return
	}

	view := "labs_user.html"
	if user.Role == models.RoleAdmin {
		view = "labs_admin.html"
	}
	ctx.HTML(http.StatusOK, view, gin.H{"Labs": labs})
}

// Create is open to every authenticated role.
func (h *LabsHandler) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	if !requireAllowed(ctx, user, policy.Labs, policy.ActionCreate) {
		return
	}

	var req CreateLabRequest
	if err := ctx.ShouldBind(&req); err != nil {
		renderError(ctx, http.StatusBadRequest, "/labs")
		return
	}

	_, err := h.labs.Create(ctx.Request.Context(), models.Lab{
		ID:   req.ID,
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) || errors.Is(err, store.ErrValidation) {
			renderError(ctx, http.StatusBadRequest, "/labs")
			return
		}
		h.logger.Error("failed to create lab", zap.Error(err))
		renderError(ctx, http.StatusInternalServerError, "/labs")
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/labs")
}

func (h *LabsHandler) Delete(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	if !requireAllowed(ctx, user, policy.Labs, policy.ActionDelete) {
		return
	}

	var req DeleteLabRequest
	if err := ctx.ShouldBind(&req); err != nil {
		renderError(ctx, http.StatusBadRequest, "/labs")
		return
	}

	if err := h.labs.Delete(ctx.Request.Context(), req.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			renderError(ctx, http.StatusNotFound, "/labs")
			return
		}
		h.logger.Error("failed to delete lab", zap.Error(err))
		renderError(ctx, http.StatusInternalServerError, "/labs")
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/labs")
}
