package store

import (
	"context"
	"fmt"

	"github.com/labkeep-dev/labkeep/internal/models"
	"gorm.io/gorm"
)

// PhysicalResourceStore persists hardware inventory.
type PhysicalResourceStore struct {
	db *gorm.DB
}

func NewPhysicalResourceStore(db *gorm.DB) *PhysicalResourceStore {
	return &PhysicalResourceStore{db: db}
}

func (s *PhysicalResourceStore) List(ctx context.Context) ([]models.PhysicalResource, error) {
	var resources []models.PhysicalResource
	if err := s.db.WithContext(ctx).Order("id").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (s *PhysicalResourceStore) Create(ctx context.Context, resource models.PhysicalResource) (models.PhysicalResource, error) {
	if resource.ID == 0 {
		return models.PhysicalResource{}, fmt.Errorf("resource id is required: %w", ErrValidation)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.PhysicalResource{}).Where("id = ?", resource.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("physical resource %d: %w", resource.ID, ErrDuplicate)
		}
		if err := tx.Model(&models.PhysicalResource{}).Where("serial_number = ?", resource.SerialNumber).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("serial number %q: %w", resource.SerialNumber, ErrDuplicate)
		}
		return mapDuplicate(tx.Create(&resource).Error, fmt.Sprintf("physical resource %d", resource.ID))
	})
	if err != nil {
		return models.PhysicalResource{}, err
	}
	return resource, nil
}

func (s *PhysicalResourceStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.PhysicalResource{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("physical resource %d: %w", id, ErrNotFound)
	}
	return nil
}
