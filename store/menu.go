package store

import (
	"errors"

	"bistro-api/models"

	"gorm.io/gorm"
)

type MenuStore struct {
	db *gorm.DB
}

func NewMenuStore(db *gorm.DB) *MenuStore {
	return &MenuStore{db: db}
}

func (s *MenuStore) List() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MenuStore) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuStore) Create(item *models.MenuItem) error {
	return s.db.Create(item).Error
}

func (s *MenuStore) Delete(id uint) (int64, error) {
	res := s.db.Delete(&models.MenuItem{}, id)
	return res.RowsAffected, res.Error
}
