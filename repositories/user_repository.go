// File: /repositories/user_repository.go
package repositories

import (
	"gorm.io/gorm"

	"eventure-api/models"
)

// UserRepository is the production user directory. The event service
// depends on the services.UserDirectory interface, which this satisfies.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "user_name = ?", username).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
