package repository

import (
	"kidquest_backend/internal/model"

	"gorm.io/gorm"
)

type AgeGroupRepository struct {
	DB *gorm.DB
}

func NewAgeGroupRepository(db *gorm.DB) *AgeGroupRepository {
	return &AgeGroupRepository{DB: db}
}

func (r *AgeGroupRepository) List() ([]model.AgeGroup, error) {
	var groups []model.AgeGroup
	err := r.DB.Order("min_age asc").Find(&groups).Error
	return groups, err
}

func (r *AgeGroupRepository) FindByID(id uint) (*model.AgeGroup, error) {
	var group model.AgeGroup
	err := r.DB.First(&group, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *AgeGroupRepository) Create(group *model.AgeGroup) error {
	return r.DB.Create(group).Error
}

func (r *AgeGroupRepository) Update(group *model.AgeGroup) error {
	return r.DB.Save(group).Error
}

func (r *AgeGroupRepository) Delete(id uint) error {
	return r.DB.Delete(&model.AgeGroup{}, id).Error
}

type LearningModuleRepository struct {
	DB *gorm.DB
}

func NewLearningModuleRepository(db *gorm.DB) *LearningModuleRepository {
	return &LearningModuleRepository{DB: db}
}

func (r *LearningModuleRepository) List() ([]model.LearningModule, error) {
	var modules []model.LearningModule
	err := r.DB.Where("is_active = ?", true).Order("position asc").Find(&modules).Error
	return modules, err
}

func (r *LearningModuleRepository) ListByAgeGroup(ageGroupID uint) ([]model.LearningModule, error) {
	var modules []model.LearningModule
	err := r.DB.Where("age_group_id = ? AND is_active = ?", ageGroupID, true).
		Order("position asc").
		Find(&modules).Error
	return modules, err
}

func (r *LearningModuleRepository) FindByID(id uint) (*model.LearningModule, error) {
	var module model.LearningModule
	err := r.DB.First(&module, id).Error
	if err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *LearningModuleRepository) Create(module *model.LearningModule) error {
	return r.DB.Create(module).Error
}

func (r *LearningModuleRepository) Update(module *model.LearningModule) error {
	return r.DB.Save(module).Error
}

func (r *LearningModuleRepository) Delete(id uint) error {
	return r.DB.Delete(&model.LearningModule{}, id).Error
}
