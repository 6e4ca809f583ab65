package repository

import (
	"kidquest_backend/internal/model"

	"gorm.io/gorm"
)

type ChildProfileRepository struct {
	DB *gorm.DB
}

func NewChildProfileRepository(db *gorm.DB) *ChildProfileRepository {
	return &ChildProfileRepository{DB: db}
}

func (r *ChildProfileRepository) Create(profile *model.ChildProfile) error {
	return r.DB.Create(profile).Error
}

func (r *ChildProfileRepository) FindByID(id uint) (*model.ChildProfile, error) {
	var profile model.ChildProfile
	err := r.DB.First(&profile, id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ChildProfileRepository) FindByUserID(userID uint) ([]model.ChildProfile, error) {
	var profiles []model.ChildProfile
	err := r.DB.Where("user_id = ?", userID).Order("created_at asc").Find(&profiles).Error
	return profiles, err
}

func (r *ChildProfileRepository) Update(profile *model.ChildProfile) error {
	return r.DB.Save(profile).Error
}

func (r *ChildProfileRepository) Delete(id uint) error {
	return r.DB.Delete(&model.ChildProfile{}, id).Error
}
