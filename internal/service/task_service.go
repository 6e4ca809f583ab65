package service

import (
	"encoding/json"
	"errors"

	"kidquest_backend/internal/model"
	"kidquest_backend/internal/repository"
	"kidquest_backend/internal/util"

	"gorm.io/gorm"
)

// TaskService is the admin surface for tasks and their versioned content.
type TaskService struct {
	TaskRepo    *repository.TaskRepository
	VersionRepo *repository.TaskVersionRepository
	GameRepo    *repository.GameRepository
	LevelRepo   *repository.GameLevelRepository
}

func NewTaskService(
	taskRepo *repository.TaskRepository,
	versionRepo *repository.TaskVersionRepository,
	gameRepo *repository.GameRepository,
	levelRepo *repository.GameLevelRepository,
) *TaskService {
	return &TaskService{
		TaskRepo:    taskRepo,
		VersionRepo: versionRepo,
		GameRepo:    gameRepo,
		LevelRepo:   levelRepo,
	}
}

type TaskRequest struct {
	GameID   uint  `json:"gameId" binding:"required"`
	LevelID  *uint `json:"levelId"`
	Position int   `json:"position"`
	IsActive bool  `json:"isActive"`
}

func (s *TaskService) ListTasks(gameID uint, levelID *uint) ([]model.Task, error) {
	if _, err := s.GameRepo.FindByID(gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("game not found")
		}
		return nil, err
	}
	return s.TaskRepo.ListByGameAndLevel(gameID, levelID)
}

func (s *TaskService) CreateTask(req TaskRequest) (*model.Task, error) {
	if _, err := s.GameRepo.FindByID(req.GameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ValidationError("unknown game")
		}
		return nil, err
	}
	if req.LevelID != nil {
		level, err := s.LevelRepo.FindByID(*req.LevelID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ValidationError("unknown level")
			}
			return nil, err
		}
		if level.GameID != req.GameID {
			return nil, util.ValidationError("level does not belong to this game")
		}
	}

	task := &model.Task{
		GameID:   req.GameID,
		LevelID:  req.LevelID,
		Position: req.Position,
		IsActive: req.IsActive,
	}
	if err := s.TaskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) UpdateTask(id uint, req TaskRequest) (*model.Task, error) {
	task, err := s.TaskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("task not found")
		}
		return nil, err
	}
	if req.GameID != task.GameID {
		return nil, util.ValidationError("task cannot be moved to another game")
	}
	if req.LevelID != nil {
		level, err := s.LevelRepo.FindByID(*req.LevelID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ValidationError("unknown level")
			}
			return nil, err
		}
		if level.GameID != task.GameID {
			return nil, util.ValidationError("level does not belong to this game")
		}
	}

	task.LevelID = req.LevelID
	task.Position = req.Position
	task.IsActive = req.IsActive
	if err := s.TaskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(id uint) error {
	if _, err := s.TaskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundError("task not found")
		}
		return err
	}
	return s.TaskRepo.Delete(id)
}

type TaskVersionRequest struct {
	Difficulty    int             `json:"difficulty" binding:"required"`
	Prompt        string          `json:"prompt"`
	Data          json.RawMessage `json:"data" binding:"required"`
	CorrectAnswer json.RawMessage `json:"correctAnswer" binding:"required"`
	MakeCurrent   bool            `json:"makeCurrent"`
}

func (s *TaskService) ListVersions(taskID uint) ([]model.TaskVersion, error) {
	if _, err := s.TaskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("task not found")
		}
		return nil, err
	}
	return s.VersionRepo.ListByTask(taskID)
}

// CreateVersion appends a new revision; with MakeCurrent it also replaces the
// current version of the (task, difficulty) pair.
func (s *TaskService) CreateVersion(taskID uint, req TaskVersionRequest) (*model.TaskVersion, error) {
	if _, err := s.TaskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("task not found")
		}
		return nil, err
	}
	if req.Difficulty <= 0 {
		return nil, util.ValidationError("difficulty must be positive")
	}
	if !json.Valid(req.Data) {
		return nil, util.ValidationError("data must be valid JSON")
	}
	if !json.Valid(req.CorrectAnswer) {
		return nil, util.ValidationError("correctAnswer must be valid JSON")
	}

	number, err := s.VersionRepo.NextVersionNumber(taskID)
	if err != nil {
		return nil, err
	}

	version := &model.TaskVersion{
		TaskID:        taskID,
		Version:       number,
		Difficulty:    req.Difficulty,
		Prompt:        req.Prompt,
		Data:          req.Data,
		CorrectAnswer: req.CorrectAnswer,
	}
	if err := s.VersionRepo.Create(version); err != nil {
		return nil, err
	}
	if req.MakeCurrent {
		if err := s.VersionRepo.SetCurrent(version); err != nil {
			return nil, err
		}
		version.IsCurrent = true
	}
	return version, nil
}

// SetCurrentVersion promotes an existing revision to current.
func (s *TaskService) SetCurrentVersion(taskID, versionID uint) (*model.TaskVersion, error) {
	version, err := s.VersionRepo.FindByID(versionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("task version not found")
		}
		return nil, err
	}
	if version.TaskID != taskID {
		return nil, util.NotFoundError("task version not found")
	}
	if err := s.VersionRepo.SetCurrent(version); err != nil {
		return nil, err
	}
	version.IsCurrent = true
	return version, nil
}
