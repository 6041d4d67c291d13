package store

import (
	"context"
	"testing"

	"github.com/labkeep-dev/labkeep/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhysicalResourceStore_CreateListDelete(t *testing.T) {
	ctx := context.Background()
	resources := NewPhysicalResourceStore(newTestDB(t))

	_, err := resources.Create(ctx, models.PhysicalResource{
		ID: 1, Quantity: 4, Manufacturer: "Dell", Model: "R740", SerialNumber: "SN-001",
	})
	require.NoError(t, err)

	got, err := resources.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "SN-001", got[0].SerialNumber)

	require.NoError(t, resources.Delete(ctx, 1))

	err = resources.Delete(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPhysicalResourceStore_SerialNumberUnique(t *testing.T) {
	ctx := context.Background()
	gormDB := newTestDB(t)
	resources := NewPhysicalResourceStore(gormDB)

	_, err := resources.Create(ctx, models.PhysicalResource{
		ID: 1, Quantity: 4, SerialNumber: "SN-001",
	})
	require.NoError(t, err)

	_, err = resources.Create(ctx, models.PhysicalResource{
		ID: 2, Quantity: 1, SerialNumber: "SN-001",
	})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.EqualValues(t, 1, countRows[models.PhysicalResource](t, gormDB))
}

func TestVirtualResourceStore_CreateListDelete(t *testing.T) {
	ctx := context.Background()
	gormDB := newTestDB(t)
	resources := NewVirtualResourceStore(gormDB)

	_, err := resources.Create(ctx, models.VirtualResource{
		ID: 1, Quantity: 10, OSManufacturer: "Canonical", OSVersion: "24.04",
	})
	require.NoError(t, err)

	_, err = resources.Create(ctx, models.VirtualResource{ID: 1, Quantity: 2})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.EqualValues(t, 1, countRows[models.VirtualResource](t, gormDB))

	got, err := resources.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "24.04", got[0].OSVersion)

	require.NoError(t, resources.Delete(ctx, 1))

	err = resources.Delete(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}
