package store

import (
	"bistro-api/models"

	"gorm.io/gorm"
)

type ReviewStore struct {
	db *gorm.DB
}

func NewReviewStore(db *gorm.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

func (s *ReviewStore) List() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Create exists for seeding; reviews have no write route on the API.
func (s *ReviewStore) Create(review *models.Review) error {
	return s.db.Create(review).Error
}
