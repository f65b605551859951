package store

import (
	"errors"

	"bistro-api/models"

	"gorm.io/gorm"
)

// UserStore is the privileged collection: every admin check in the
// system resolves through GetByEmail, so role state here is the single
// source of truth.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) Create(user *models.User) error {
	return s.db.Create(user).Error
}

// PromoteToAdmin sets the role of the user with the given id to admin.
// There is no demotion path through this store.
func (s *UserStore) PromoteToAdmin(id uint) (int64, error) {
	res := s.db.Model(&models.User{}).Where("id = ?", id).Update("role", models.RoleAdmin)
	return res.RowsAffected, res.Error
}

func (s *UserStore) Delete(id uint) (int64, error) {
	res := s.db.Delete(&models.User{}, id)
	return res.RowsAffected, res.Error
}
