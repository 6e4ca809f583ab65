package repository

import (
	"kidquest_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

func (r *BadgeRepository) ListActive() ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Where("is_active = ?", true).Order("created_at asc").Find(&badges).Error
	return badges, err
}

func (r *BadgeRepository) List() ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Order("created_at asc").Find(&badges).Error
	return badges, err
}

func (r *BadgeRepository) FindByID(id uint) (*model.Badge, error) {
	var badge model.Badge
	err := r.DB.First(&badge, id).Error
	if err != nil {
		return nil, err
	}
	return &badge, nil
}

func (r *BadgeRepository) Create(badge *model.Badge) error {
	return r.DB.Create(badge).Error
}

func (r *BadgeRepository) Update(badge *model.Badge) error {
	return r.DB.Save(badge).Error
}

func (r *BadgeRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Badge{}, id).Error
}

type ChildBadgeRepository struct {
	DB *gorm.DB
}

func NewChildBadgeRepository(db *gorm.DB) *ChildBadgeRepository {
	return &ChildBadgeRepository{DB: db}
}

func (r *ChildBadgeRepository) FindByChild(childProfileID uint) ([]model.ChildBadge, error) {
	var awarded []model.ChildBadge
	err := r.DB.Where("child_profile_id = ?", childProfileID).Find(&awarded).Error
	return awarded, err
}

// Award inserts the (child, badge) pair, silently skipping duplicates so
// repeated awarding stays idempotent.
func (r *ChildBadgeRepository) Award(childProfileID, badgeID uint) (bool, error) {
	result := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.ChildBadge{
		ChildProfileID: childProfileID,
		BadgeID:        badgeID,
	})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
