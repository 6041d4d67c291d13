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

type PhysicalResourceRepository interface {
	List(ctx context.Context) ([]models.PhysicalResource, error)
	Create(ctx context.Context, resource models.PhysicalResource) (models.PhysicalResource, error)
	Delete(ctx context.Context, id uint) error
}

// PhysicalHandler manages the hardware inventory. Every route is
// admin-only; other roles are bounced to the dashboard.
type PhysicalHandler struct {
	resources PhysicalResourceRepository
	logger    *zap.Logger
}

func NewPhysicalHandler(resources PhysicalResourceRepository, logger *zap.Logger) *PhysicalHandler {
	return &PhysicalHandler{resources: resources, logger: logger}
}

type CreatePhysicalResourceRequest struct {
	ID           uint   `form:"resourceIdP" binding:"required"`
	Quantity     int    `form:"resourceQuantityP" binding:"required"`
	Manufacturer string `form:"resourceManufacturer"`
	Model        string `form:"resourceModel"`
	SerialNumber string `form:"resourceSerialNumber" binding:"required"`
}

type DeletePhysicalResourceRequest struct {
	ID uint `form:"resourceIdP" binding:"required"`
}

func (h *PhysicalHandler) Show(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	if !requireAllowed(ctx, user, policy.Physical, policy.ActionList) {
		return
	}

	resources, err := h.resources.List(ctx.Request.Context())
	if err != nil {
		h.logger.Error("failed to list physical resources", zap.Error(err))
		renderError(ctx, http.StatusInternalServerError, "/physical")
		return
	}

	ctx.HTML(http.StatusOK, "physical.html", gin.H{"Resources": resources})
}

func (h *PhysicalHandler) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	if !requireAllowed(ctx, user, policy.Physical, policy.ActionCreate) {
		return
	}

	var req CreatePhysicalResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		renderError(ctx, http.StatusBadRequest, "/physical")
		return
	}

	_, err := h.resources.Create(ctx.Request.Context(), models.PhysicalResource{
		ID:           req.ID,
		Quantity:     req.Quantity,
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) || errors.Is(err, store.ErrValidation) {
			renderError(ctx, http.StatusBadRequest, "/physical")
			return
		}
		h.logger.Error("failed to create physical resource", zap.Error(err))
		renderError(ctx, http.StatusInternalServerError, "/physical")
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/physical")
}

func (h *PhysicalHandler) Delete(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	if !requireAllowed(ctx, user, policy.Physical, policy.ActionDelete) {
		return
	}

	var req DeletePhysicalResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		renderError(ctx, http.StatusBadRequest, "/physical")
		return
	}

	if err := h.resources.Delete(ctx.Request.Context(), req.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			renderError(ctx, http.StatusNotFound, "/physical")
			return
		}
		h.logger.Error("failed to delete physical resource", zap.Error(err))
		renderError(ctx, http.StatusInternalServerError, "/physical")
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/physical")
}
