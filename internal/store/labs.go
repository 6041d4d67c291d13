package store

import (
	"context"
	"fmt"

	"github.com/labkeep-dev/labkeep/internal/models"
	"gorm.io/gorm"
)

// LabStore persists labs.
type LabStore struct {
	db *gorm.DB
}

func NewLabStore(db *gorm.DB) *LabStore {
	return &LabStore{db: db}
}

func (s *LabStore) List(ctx context.Context) ([]models.Lab, error) {
	var labs []models.Lab
	if err := s.db.WithContext(ctx).Order("id").Find(&labs).Error; err != nil {
		return nil, err
	}
	return labs, nil
}

func (s *LabStore) Create(ctx context.Context, lab models.Lab) (models.Lab, error) {
	if lab.ID == 0 {
		return models.Lab{}, fmt.Errorf("lab id is required: %w", ErrValidation)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Lab{}).Where("id = ?", lab.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("lab %d: %w", lab.ID, ErrDuplicate)
		}
		return mapDuplicate(tx.Create(&lab).Error, fmt.Sprintf("lab %d", lab.ID))
	})
	if err != nil {
		return models.Lab{}, err
	}
	return lab, nil
}

func (s *LabStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Lab{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("lab %d: %w", id, ErrNotFound)
	}
	return nil
}
