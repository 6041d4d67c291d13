package store

import (
	"context"
	"fmt"

	"github.com/labkeep-dev/labkeep/internal/models"
	"gorm.io/gorm"
)

// VirtualResourceStore persists VM/OS image inventory.
type VirtualResourceStore struct {
	db *gorm.DB
}

func NewVirtualResourceStore(db *gorm.DB) *VirtualResourceStore {
	return &VirtualResourceStore{db: db}
}

func (s *VirtualResourceStore) List(ctx context.Context) ([]models.VirtualResource, error) {
	var resources []models.VirtualResource
	if err := s.db.WithContext(ctx).Order("id").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (s *VirtualResourceStore) Create(ctx context.Context, resource models.VirtualResource) (models.VirtualResource, error) {
	if resource.ID == 0 {
		return models.VirtualResource{}, fmt.Errorf("resource id is required: %w", ErrValidation)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.VirtualResource{}).Where("id = ?", resource.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("virtual resource %d: %w", resource.ID, ErrDuplicate)
		}
		return mapDuplicate(tx.Create(&resource).Error, fmt.Sprintf("virtual resource %d", resource.ID))
	})
	if err != nil {
		return models.VirtualResource{}, err
	}
	return resource, nil
}

func (s *VirtualResourceStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.VirtualResource{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("virtual resource %d: %w", id, ErrNotFound)
	}
	return nil
}
