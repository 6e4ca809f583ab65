package repository

import (
	"kidquest_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.Attempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) FindByID(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.DB.First(&attempt, id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *AttemptRepository) FindByChild(childProfileID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.DB.Where("child_profile_id = ?", childProfileID).Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) CountFinishedByChild(childProfileID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Attempt{}).
		Where("child_profile_id = ? AND is_finished = ?", childProfileID, true).
		Count(&count).Error
	return count, err
}

// IncrementCounters applies the answer outcome as relative deltas so that
// concurrent submissions to the same attempt do not lose updates.
func (r *AttemptRepository) IncrementCounters(attemptID uint, correct bool) error {
	updates := map[string]interface{}{
		"total_count": gorm.Expr("total_count + ?", 1),
	}
	if correct {
		updates["correct_count"] = gorm.Expr("correct_count + ?", 1)
		updates["score"] = gorm.Expr("score + ?", 10)
	}
	return r.DB.Model(&model.Attempt{}).
		Where("id = ?", attemptID).
		Updates(updates).Error
}

func (r *AttemptRepository) MarkFinished(attemptID uint, finishedAt time.Time, durationSec int) error {
	updates := map[string]interface{}{
		"is_finished": true,
		"finished_at": finishedAt,
	}
	if durationSec > 0 {
		updates["duration_sec"] = durationSec
	}
	return r.DB.Model(&model.Attempt{}).
		Where("id = ?", attemptID).
		Updates(updates).Error
}

// LevelIDsWithAttempts returns the distinct level ids the child has any
// attempt against within one game/difficulty, finished or not.
func (r *AttemptRepository) LevelIDsWithAttempts(childProfileID, gameID uint, difficulty int) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Attempt{}).
		Joins("JOIN game_levels ON game_levels.id = attempts.level_id").
		Where("attempts.child_profile_id = ? AND attempts.game_id = ? AND game_levels.difficulty = ?",
			childProfileID, gameID, difficulty).
		Distinct().
		Pluck("attempts.level_id", &ids).Error
	return ids, err
}

type TaskAnswerRepository struct {
	DB *gorm.DB
}

func NewTaskAnswerRepository(db *gorm.DB) *TaskAnswerRepository {
	return &TaskAnswerRepository{DB: db}
}

func (r *TaskAnswerRepository) Create(answer *model.TaskAnswer) error {
	return r.DB.Create(answer).Error
}

func (r *TaskAnswerRepository) FindByAttempt(attemptID uint) ([]model.TaskAnswer, error) {
	var answers []model.TaskAnswer
	err := r.DB.Where("attempt_id = ?", attemptID).Order("created_at asc").Find(&answers).Error
	return answers, err
}
