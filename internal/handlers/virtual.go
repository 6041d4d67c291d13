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

type VirtualResourceRepository interface {
	List(ctx context.Context) ([]models.VirtualResource, error)
	Create(ctx context.Context, resource models.VirtualResource) (models.VirtualResource, error)
	Delete(ctx context.Context, id uint) error
}

// VirtualHandler manages the VM/OS image inventory, admin-only like
// the physical one.
type VirtualHandler struct {
	resources VirtualResourceRepository
	logger    *zap.Logger
}

func NewVirtualHandler(resources VirtualResourceRepository, logger *zap.Logger) *VirtualHandler {
	return &VirtualHandler{resources: resources, logger: logger}
}

type CreateVirtualResourceRequest struct {
	ID             uint   `form:"resourceIdV" binding:"required"`
	Quantity       int    `form:"resourceQuantityV" binding:"required"`
	OSManufacturer string `form:"OSManufacturer"`
	OSVersion      string `form:"OSVersion"`
}

type DeleteVirtualResourceRequest struct {
	ID uint `form:"resourceIdV" binding:"required"`
}

func (h *VirtualHandler) Show(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	if !requireAllowed(ctx, user, policy.Virtual, policy.ActionList) {
		return
	}

	resources, err := h.resources.List(ctx.Request.Context())
	if err != nil {
		h.logger.Error("failed to list virtual resources", zap.Error(err))
		renderError(ctx, http.StatusInternalServerError, "/virtual")
		return
	}

	ctx.HTML(http.StatusOK, "virtual.html", gin.H{"Resources": resources})
}

func (h *VirtualHandler) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	if !requireAllowed(ctx, user, policy.Virtual, policy.ActionCreate) {
		return
	}

	var req CreateVirtualResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		renderError(ctx, http.StatusBadRequest, "/virtual")
		return
	}

	_, err := h.resources.Create(ctx.Request.Context(), models.VirtualResource{
		ID:             req.ID,
		Quantity:       req.Quantity,
		OSManufacturer: req.OSManufacturer,
		OSVersion:      req.OSVersion,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) || errors.Is(err, store.ErrValidation) {
			renderError(ctx, http.StatusBadRequest, "/virtual")
			return
		}
		h.logger.Error("failed to create virtual resource", zap.Error(err))
		renderError(ctx, http.StatusInternalServerError, "/virtual")
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/virtual")
}

func (h *VirtualHandler) Delete(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	if !requireAllowed(ctx, user, policy.Virtual, policy.ActionDelete) {
		return
	}

	var req DeleteVirtualResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		renderError(ctx, http.StatusBadRequest, "/virtual")
		return
	}

	if err := h.resources.Delete(ctx.Request.Context(), req.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			renderError(ctx, http.StatusNotFound, "/virtual")
			return
		}
		h.logger.Error("failed to delete virtual resource", zap.Error(err))
		renderError(ctx, http.StatusInternalServerError, "/virtual")
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/virtual")
}
