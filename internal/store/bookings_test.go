package store

import (
	"context"
	"testing"

	"github.com/labkeep-dev/labkeep/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStore_ListByUserScopesToOwner(t *testing.T) {
	ctx := context.Background()
	bookings := NewBookingStore(newTestDB(t))

	_, err := bookings.Create(ctx, models.Booking{UserID: 1, Name: "morning slot", Date: "2026-09-01"})
	require.NoError(t, err)
	_, err = bookings.Create(ctx, models.Booking{UserID: 2, Name: "afternoon slot", Date: "2026-09-01"})
	require.NoError(t, err)
	_, err = bookings.Create(ctx, models.Booking{UserID: 1, Name: "evening slot", Date: "2026-09-02"})
	require.NoError(t, err)

	mine, err := bookings.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, b := range mine {
		assert.EqualValues(t, 1, b.UserID)
	}

	all, err := bookings.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestBookingStore_CreateValidation(t *testing.T) {
	ctx := context.Background()
	gormDB := newTestDB(t)
	bookings := NewBookingStore(gormDB)

	_, err := bookings.Create(ctx, models.Booking{Name: "ownerless", Date: "2026-09-01"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = bookings.Create(ctx, models.Booking{UserID: 1, Name: "bad date", Date: "tomorrow"})
	assert.ErrorIs(t, err, ErrValidation)

	assert.EqualValues(t, 0, countRows[models.Booking](t, gormDB))
}

func TestBookingStore_DeleteOwned(t *testing.T) {
	ctx := context.Background()
	gormDB := newTestDB(t)
	bookings := NewBookingStore(gormDB)

	mine, err := bookings.Create(ctx, models.Booking{UserID: 1, Name: "mine", Date: "2026-09-01"})
	require.NoError(t, err)
	theirs, err := bookings.Create(ctx, models.Booking{UserID: 2, Name: "theirs", Date: "2026-09-01"})
	require.NoError(t, err)

	// Someone else's booking reads as not-found for the non-owner.
	err = bookings.DeleteOwned(ctx, theirs.ID, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualValues(t, 2, countRows[models.Booking](t, gormDB))

	require.NoError(t, bookings.DeleteOwned(ctx, mine.ID, 1))
	assert.EqualValues(t, 1, countRows[models.Booking](t, gormDB))
}

func TestBookingStore_AdminDeleteAnyOwner(t *testing.T) {
	ctx := context.Background()
	bookings := NewBookingStore(newTestDB(t))

	theirs, err := bookings.Create(ctx, models.Booking{UserID: 2, Name: "theirs", Date: "2026-09-01"})
	require.NoError(t, err)

	require.NoError(t, bookings.Delete(ctx, theirs.ID))

	remaining, err := bookings.ListByUser(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestBookingStore_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	bookings := NewBookingStore(newTestDB(t))

	err := bookings.Delete(ctx, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}
