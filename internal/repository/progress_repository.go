package repository

import (
	"errors"
	"kidquest_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// FindOrCreate lazily creates the progress row with maxUnlockedLevel=1 on
// first reference for a (child, game, difficulty) triple.
func (r *ProgressRepository) FindOrCreate(childProfileID, gameID uint, difficulty int) (*model.ChildLevelProgress, error) {
	var progress model.ChildLevelProgress
	err := r.DB.Where("child_profile_id = ? AND game_id = ? AND difficulty = ?",
		childProfileID, gameID, difficulty).
		First(&progress).Error
	if err == nil {
		return &progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress = model.ChildLevelProgress{
		ChildProfileID:   childProfileID,
		GameID:           gameID,
		Difficulty:       difficulty,
		MaxUnlockedLevel: 1,
	}
	if err := r.DB.Create(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) Find(childProfileID, gameID uint, difficulty int) (*model.ChildLevelProgress, error) {
	var progress model.ChildLevelProgress
	err := r.DB.Where("child_profile_id = ? AND game_id = ? AND difficulty = ?",
		childProfileID, gameID, difficulty).
		First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// UpdateMaxUnlockedLevel targets the exact triple and guards against
// regressions in the WHERE clause, keeping the column monotone even under
// concurrent finishes.
func (r *ProgressRepository) UpdateMaxUnlockedLevel(childProfileID, gameID uint, difficulty, maxUnlockedLevel int) error {
	return r.DB.Model(&model.ChildLevelProgress{}).
		Where("child_profile_id = ? AND game_id = ? AND difficulty = ? AND max_unlocked_level < ?",
			childProfileID, gameID, difficulty, maxUnlockedLevel).
		Update("max_unlocked_level", maxUnlockedLevel).Error
}
