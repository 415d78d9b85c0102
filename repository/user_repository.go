package repository

import (
	"errors"

	"gorm.io/gorm"

	"foodigo/entity"
)

// UserRepository owns every query against the users table.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindBySocial matches either the provider identity or the email, so a
// user who registered with a password can later sign in socially.
func (r *UserRepository) FindBySocial(socialID, socialType, email string) (*entity.User, error) {
	var user entity.User
	err := r.DB.
		Where("(social_id = ? AND social_type = ?) OR email = ?", socialID, socialType, email).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CountByEmail counts users with the email, excluding excludeID when > 0.
func (r *UserRepository) CountByEmail(email string, excludeID uint) (int64, error) {
	var count int64
	q := r.DB.Model(&entity.User{}).Where("email = ?", email)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
