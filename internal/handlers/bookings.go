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

type BookingRepository interface {
	List(ctx context.Context) ([]models.Booking, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Booking, error)
	Create(ctx context.Context, booking models.Booking) (models.Booking, error)
	Delete(ctx context.Context, id uint) error
	DeleteOwned(ctx context.Context, id, userID uint) error
}

// Refresher is notified after every successful booking mutation so
// connected clients can reload their views.
type Refresher interface {
	BroadcastRefresh(reason string)
}

type BookingsHandler struct {
	bookings BookingRepository
	refresh  Refresher
	logger   *zap.Logger
}

func NewBookingsHandler(bookings BookingRepository, refresh Refresher, logger *zap.Logger) *BookingsHandler {
	return &BookingsHandler{bookings: bookings, refresh: refresh, logger: logger}
}

type CreateBookingRequest struct {
	UserID uint   `form:"bookingUserId"`
	Name   string `form:"bookingName" binding:"required"`
	Date   string `form:"bookingDate" binding:"required,datetime=2006-01-02"`
}

type DeleteBookingRequest struct {
	ID uint `form:"bookingId" binding:"required"`
}

// Show lists all bookings for admins and only the caller's own
// bookings for everyone else.
func (h *BookingsHandler) Show(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}

	var (
		bookings []models.Booking
		err      error
	)
	if user.Role == models.RoleAdmin {
		bookings, err = h.bookings.List(ctx.Request.Context())
	} else {
		bookings, err = h.bookings.ListByUser(ctx.Request.Context(), user.ID)
	}
	if err != nil {
		h.logger.Error("failed to list bookings", zap.Error(err))
		renderError(ctx, http.StatusInternalServerError, "/bookings")
		return
	}

	view := "bookings_user.html"
	if user.Role == models.RoleAdmin {
		view = "bookings_admin.html"
	}
	ctx.HTML(http.StatusOK, view, gin.H{"Bookings": bookings})
}

// Create books a slot. Admins may book on behalf of any user id; for
// everyone else the owner id is forced to the caller's own id no matter
// what the form submitted.
func (h *BookingsHandler) Create(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	if !requireAllowed(ctx, user, policy.Bookings, policy.ActionCreate) {
		return
	}

	var req CreateBookingRequest
	if err := ctx.ShouldBind(&req); err != nil {
		renderError(ctx, http.StatusBadRequest, "/bookings")
		return
	}

	ownerID := req.UserID
	if user.Role != models.RoleAdmin {
		ownerID = user.ID
	}

	_, err := h.bookings.Create(ctx.Request.Context(), models.Booking{
		UserID: ownerID,
		Name:   req.Name,
		Date:   req.Date,
	})
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			renderError(ctx, http.StatusBadRequest, "/bookings")
			return
		}
		h.logger.Error("failed to create booking", zap.Error(err))
		renderError(ctx, http.StatusInternalServerError, "/bookings")
		return
	}

	h.refresh.BroadcastRefresh("bookings")
	ctx.Redirect(http.StatusSeeOther, "/bookings")
}

// Delete removes a booking. Admins can delete any booking; other users
// only their own, and a foreign booking id reports not-found.
func (h *BookingsHandler) Delete(ctx *gin.Context) {
	user, ok := currentUser(ctx)
	if !ok {
		return
	}
	if !requireAllowed(ctx, user, policy.Bookings, policy.ActionDelete) {
		return
	}

	var req DeleteBookingRequest
	if err := ctx.ShouldBind(&req); err != nil {
		renderError(ctx, http.StatusBadRequest, "/bookings")
		return
	}

	var err error
	if user.Role == models.RoleAdmin {
		err = h.bookings.Delete(ctx.Request.Context(), req.ID)
	} else {
		err = h.bookings.DeleteOwned(ctx.Request.Context(), req.ID, user.ID)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			renderError(ctx, http.StatusNotFound, "/bookings")
			return
		}
		h.logger.Error("failed to delete booking", zap.Error(err))
		renderError(ctx, http.StatusInternalServerError, "/bookings")
		return
	}

	h.refresh.BroadcastRefresh("bookings")
	ctx.Redirect(http.StatusSeeOther, "/bookings")
}
