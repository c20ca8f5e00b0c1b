package repository

import (
	"go-pos-backoffice/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(profile *model.Profile) error
	FindByUsername(username string) (*model.Profile, error)
	FindByID(id uuid.UUID) (*model.Profile, error)
	UpdatePassword(id uuid.UUID, passwordHash string) error
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db}
}

func (r *profileRepo) Create(profile *model.Profile) error {
	return r.db.Create(profile).Error
}

func (r *profileRepo) FindByUsername(username string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.First(&profile, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) FindByID(id uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) UpdatePassword(id uuid.UUID, passwordHash string) error {
	return r.db.Model(&model.Profile{}).Where("id = ?", id).Update("password_hash", passwordHash).Error
}
