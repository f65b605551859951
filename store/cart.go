package store

import (
	"bistro-api/models"

	"gorm.io/gorm"
)

type CartStore struct {
	db *gorm.DB
}

func NewCartStore(db *gorm.DB) *CartStore {
	return &CartStore{db: db}
}

func (s *CartStore) ListByEmail(email string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.Where("email = ?", email).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CartStore) Create(item *models.CartItem) error {
	return s.db.Create(item).Error
}

func (s *CartStore) Delete(id uint) (int64, error) {
	res := s.db.Delete(&models.CartItem{}, id)
	return res.RowsAffected, res.Error
}
