package repository

import (
	"kidquest_backend/internal/model"

	"gorm.io/gorm"
)

type TaskRepository struct {
	DB *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

func (r *TaskRepository) Create(task *model.Task) error {
	return r.DB.Create(task).Error
}

func (r *TaskRepository) FindByID(id uint) (*model.Task, error) {
	var task model.Task
	err := r.DB.First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListByGameAndLevel(gameID uint, levelID *uint) ([]model.Task, error) {
	var tasks []model.Task
	q := r.DB.Where("game_id = ? AND is_active = ?", gameID, true)
	if levelID != nil {
		q = q.Where("level_id = ?", *levelID)
	} else {
		q = q.Where("level_id IS NULL")
	}
	err := q.Order("position asc").Find(&tasks).Error
	return tasks, err
}

// FindFirstActive returns the lowest-position active task of a game/level.
func (r *TaskRepository) FindFirstActive(gameID uint, levelID *uint) (*model.Task, error) {
	var task model.Task
	q := r.DB.Where("game_id = ? AND is_active = ?", gameID, true)
	if levelID != nil {
		q = q.Where("level_id = ?", *levelID)
	} else {
		q = q.Where("level_id IS NULL")
	}
	err := q.Order("position asc").First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindNextWithCurrentVersion returns the lowest-position active task after the
// given position that has a current version at the requested difficulty.
func (r *TaskRepository) FindNextWithCurrentVersion(gameID uint, levelID *uint, afterPosition, difficulty int) (*model.Task, error) {
	var task model.Task
	q := r.DB.
		Joins("JOIN task_versions ON task_versions.task_id = tasks.id AND task_versions.is_current = ? AND task_versions.difficulty = ? AND task_versions.deleted_at IS NULL", true, difficulty).
		Where("tasks.game_id = ? AND tasks.is_active = ? AND tasks.position > ?", gameID, true, afterPosition)
	if levelID != nil {
		q = q.Where("tasks.level_id = ?", *levelID)
	} else {
		q = q.Where("tasks.level_id IS NULL")
	}
	err := q.Order("tasks.position asc").First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Update(task *model.Task) error {
	return r.DB.Save(task).Error
}

func (r *TaskRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Task{}, id).Error
}

type TaskVersionRepository struct {
	DB *gorm.DB
}

func NewTaskVersionRepository(db *gorm.DB) *TaskVersionRepository {
	return &TaskVersionRepository{DB: db}
}

func (r *TaskVersionRepository) Create(version *model.TaskVersion) error {
	return r.DB.Create(version).Error
}

func (r *TaskVersionRepository) FindByID(id uint) (*model.TaskVersion, error) {
	var version model.TaskVersion
	err := r.DB.First(&version, id).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

func (r *TaskVersionRepository) FindCurrent(taskID uint, difficulty int) (*model.TaskVersion, error) {
	var version model.TaskVersion
	err := r.DB.Where("task_id = ? AND difficulty = ? AND is_current = ?", taskID, difficulty, true).
		First(&version).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// FindCurrentAny falls back to the highest-numbered current version of the
// task at any difficulty.
func (r *TaskVersionRepository) FindCurrentAny(taskID uint) (*model.TaskVersion, error) {
	var version model.TaskVersion
	err := r.DB.Where("task_id = ? AND is_current = ?", taskID, true).
		Order("version desc").
		First(&version).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

func (r *TaskVersionRepository) ListByTask(taskID uint) ([]model.TaskVersion, error) {
	var versions []model.TaskVersion
	err := r.DB.Where("task_id = ?", taskID).Order("version desc").Find(&versions).Error
	return versions, err
}

func (r *TaskVersionRepository) NextVersionNumber(taskID uint) (int, error) {
	var max int
	err := r.DB.Model(&model.TaskVersion{}).
		Where("task_id = ?", taskID).
		Select("COALESCE(MAX(version), 0)").
		Scan(&max).Error
	return max + 1, err
}

// SetCurrent makes the given version the single current one for its
// (task, difficulty) pair.
func (r *TaskVersionRepository) SetCurrent(version *model.TaskVersion) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.TaskVersion{}).
			Where("task_id = ? AND difficulty = ?", version.TaskID, version.Difficulty).
			Update("is_current", false).Error; err != nil {
			return err
		}
		return tx.Model(&model.TaskVersion{}).
			Where("id = ?", version.ID).
			Update("is_current", true).Error
	})
}
