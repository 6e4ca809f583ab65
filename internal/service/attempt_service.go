package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kidquest_backend/internal/model"
	"kidquest_backend/internal/repository"
	"kidquest_backend/internal/util"
	"kidquest_backend/pkg/logger"
	"kidquest_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AttemptService drives the start → answer → (next task | finish) flow.
type AttemptService struct {
	AttemptRepo *repository.AttemptRepository
	AnswerRepo  *repository.TaskAnswerRepository
	TaskRepo    *repository.TaskRepository
	VersionRepo *repository.TaskVersionRepository
	GameRepo    *repository.GameRepository
	LevelRepo   *repository.GameLevelRepository
	ProgressSvc *ProgressService
	Achievement *AchievementService
}

func NewAttemptService(
	attemptRepo *repository.AttemptRepository,
	answerRepo *repository.TaskAnswerRepository,
	taskRepo *repository.TaskRepository,
	versionRepo *repository.TaskVersionRepository,
	gameRepo *repository.GameRepository,
	levelRepo *repository.GameLevelRepository,
	progressSvc *ProgressService,
	achievement *AchievementService,
) *AttemptService {
	return &AttemptService{
		AttemptRepo: attemptRepo,
		AnswerRepo:  answerRepo,
		TaskRepo:    taskRepo,
		VersionRepo: versionRepo,
		GameRepo:    gameRepo,
		LevelRepo:   levelRepo,
		ProgressSvc: progressSvc,
		Achievement: achievement,
	}
}

type StartAttemptRequest struct {
	ChildProfileID uint  `json:"childProfileId"`
	GameID         uint  `json:"gameId"`
	Difficulty     int   `json:"difficulty"`
	Level          *int  `json:"level,omitempty"`
	LevelID        *uint `json:"levelId,omitempty"`
}

type GameSummary struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	ModuleCode string `json:"moduleCode"`
}

type LevelSummary struct {
	ID     uint   `json:"id"`
	Number int    `json:"number"`
	Title  string `json:"title"`
}

type TaskVersionPayload struct {
	ID     uint            `json:"id"`
	Prompt string          `json:"prompt"`
	Data   json.RawMessage `json:"data"`
}

type TaskPayload struct {
	TaskID      uint               `json:"taskId"`
	Position    int                `json:"position"`
	TaskVersion TaskVersionPayload `json:"taskVersion"`
}

type StartAttemptResponse struct {
	AttemptID uint         `json:"attemptId"`
	Game      GameSummary  `json:"game"`
	Level     LevelSummary `json:"level"`
	Task      TaskPayload  `json:"task"`
}

// validateStartRequest checks inputs in a fixed order, failing on the first
// violation before any database read.
func validateStartRequest(req StartAttemptRequest) error {
	if req.ChildProfileID == 0 {
		return util.ValidationError("childProfileId is required")
	}
	if req.GameID == 0 {
		return util.ValidationError("gameId is required")
	}
	if req.Difficulty <= 0 {
		return util.ValidationError("difficulty must be a positive integer")
	}
	if req.Level != nil && *req.Level <= 0 {
		return util.ValidationError("level must be a positive integer")
	}
	if req.LevelID != nil && *req.LevelID == 0 {
		return util.ValidationError("levelId must be a positive integer")
	}
	if req.Level != nil && req.LevelID != nil {
		return util.ValidationError("level and levelId are mutually exclusive")
	}
	return nil
}

func (s *AttemptService) Start(req StartAttemptRequest) (*StartAttemptResponse, error) {
	if err := validateStartRequest(req); err != nil {
		return nil, err
	}

	game, err := s.GameRepo.FindActiveByID(req.GameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("game not found")
		}
		return nil, err
	}

	level, err := s.resolveLevel(req)
	if err != nil {
		return nil, err
	}

	progress, err := s.ProgressSvc.ProgressRepo.FindOrCreate(req.ChildProfileID, req.GameID, req.Difficulty)
	if err != nil {
		return nil, err
	}
	if level.LevelNumber > progress.MaxUnlockedLevel {
		return nil, util.ConflictError("level is locked")
	}

	task, err := s.TaskRepo.FindFirstActive(req.GameID, &level.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("no tasks found for level")
		}
		return nil, err
	}

	version, err := s.currentVersionWithFallback(task.ID, req.Difficulty)
	if err != nil {
		return nil, err
	}

	levelID := level.ID
	attempt := &model.Attempt{
		ChildProfileID: req.ChildProfileID,
		GameID:         req.GameID,
		LevelID:        &levelID,
	}
	if err := s.AttemptRepo.Create(attempt); err != nil {
		return nil, err
	}
	monitoring.AttemptsStarted.Inc()

	moduleCode := ""
	if game.Module != nil {
		moduleCode = game.Module.Code
	}

	return &StartAttemptResponse{
		AttemptID: attempt.ID,
		Game:      GameSummary{ID: game.ID, Title: game.Title, ModuleCode: moduleCode},
		Level:     LevelSummary{ID: level.ID, Number: level.LevelNumber, Title: level.Title},
		Task: TaskPayload{
			TaskID:   task.ID,
			Position: task.Position,
			TaskVersion: TaskVersionPayload{
				ID:     version.ID,
				Prompt: version.Prompt,
				Data:   version.Data,
			},
		},
	}, nil
}

// resolveLevel picks the target level: explicit levelId, explicit level
// number, or the lowest active level for the difficulty.
func (s *AttemptService) resolveLevel(req StartAttemptRequest) (*model.GameLevel, error) {
	if req.LevelID != nil {
		level, err := s.LevelRepo.FindActiveByID(*req.LevelID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.NotFoundError("level not found")
			}
			return nil, err
		}
		if level.GameID != req.GameID || level.Difficulty != req.Difficulty {
			return nil, util.NotFoundError("level not found")
		}
		return level, nil
	}

	if req.Level != nil {
		level, err := s.LevelRepo.FindByNumber(req.GameID, req.Difficulty, *req.Level)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.NotFoundError(fmt.Sprintf("level %d not found", *req.Level))
			}
			return nil, err
		}
		return level, nil
	}

	level, err := s.LevelRepo.FindLowest(req.GameID, req.Difficulty)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("no active levels")
		}
		return nil, err
	}
	return level, nil
}

// currentVersionWithFallback prefers the current version at the requested
// difficulty, falling back to the task's highest-numbered current version at
// any difficulty.
func (s *AttemptService) currentVersionWithFallback(taskID uint, difficulty int) (*model.TaskVersion, error) {
	version, err := s.VersionRepo.FindCurrent(taskID, difficulty)
	if err == nil {
		return version, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	version, err = s.VersionRepo.FindCurrentAny(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError(fmt.Sprintf("no task version for difficulty %d", difficulty))
		}
		return nil, err
	}
	return version, nil
}

type AnswerRequest struct {
	TaskID        uint        `json:"taskId"`
	TaskVersionID uint        `json:"taskVersionId"`
	UserAnswer    interface{} `json:"userAnswer"`
}

type AttemptSummary struct {
	Score        int `json:"score"`
	CorrectCount int `json:"correctCount"`
	TotalCount   int `json:"totalCount"`
}

type AnswerResponse struct {
	AttemptID uint            `json:"attemptId"`
	IsCorrect bool            `json:"isCorrect"`
	Finished  bool            `json:"finished"`
	Summary   *AttemptSummary `json:"summary,omitempty"`
	Progress  *AttemptSummary `json:"progress,omitempty"`
	NextTask  *TaskPayload    `json:"nextTask,omitempty"`
}

// Answer judges one submission, records it, and either serves the next task
// or finalizes the attempt.
func (s *AttemptService) Answer(attemptID uint, req AnswerRequest) (*AnswerResponse, error) {
	if attemptID == 0 {
		return nil, util.ValidationError("attemptId is required")
	}
	if req.TaskID == 0 {
		return nil, util.ValidationError("taskId is required")
	}
	if req.TaskVersionID == 0 {
		return nil, util.ValidationError("taskVersionId is required")
	}

	attempt, err := s.AttemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("attempt not found")
		}
		return nil, err
	}
	if attempt.IsFinished {
		return nil, util.ConflictError("attempt is already finished")
	}

	version, err := s.VersionRepo.FindByID(req.TaskVersionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("task version not found")
		}
		return nil, err
	}
	if version.TaskID != req.TaskID {
		return nil, util.ConflictError("task version does not belong to the task")
	}

	isCorrect, err := CheckAnswer(req.UserAnswer, version.CorrectAnswer)
	if err != nil {
		return nil, err
	}

	answerRaw, err := json.Marshal(req.UserAnswer)
	if err != nil {
		return nil, err
	}
	taskAnswer := &model.TaskAnswer{
		AttemptID:     attempt.ID,
		TaskID:        req.TaskID,
		TaskVersionID: req.TaskVersionID,
		Answer:        answerRaw,
		IsCorrect:     isCorrect,
	}
	if err := s.AnswerRepo.Create(taskAnswer); err != nil {
		return nil, err
	}

	if err := s.AttemptRepo.IncrementCounters(attempt.ID, isCorrect); err != nil {
		return nil, err
	}

	task, err := s.TaskRepo.FindByID(req.TaskID)
	if err != nil {
		return nil, err
	}

	next, err := s.TaskRepo.FindNextWithCurrentVersion(attempt.GameID, task.LevelID, task.Position, version.Difficulty)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if next == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		// Natural completion: no further task at this difficulty.
		if err := s.AttemptRepo.MarkFinished(attempt.ID, time.Now(), 0); err != nil {
			return nil, err
		}
		finished, err := s.AttemptRepo.FindByID(attempt.ID)
		if err != nil {
			return nil, err
		}
		s.runFinalizationHooks(finished)

		return &AnswerResponse{
			AttemptID: finished.ID,
			IsCorrect: isCorrect,
			Finished:  true,
			Summary:   summaryOf(finished),
		}, nil
	}

	nextVersion, err := s.VersionRepo.FindCurrent(next.ID, version.Difficulty)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError(fmt.Sprintf("no task version for difficulty %d", version.Difficulty))
		}
		return nil, err
	}

	updated, err := s.AttemptRepo.FindByID(attempt.ID)
	if err != nil {
		return nil, err
	}

	return &AnswerResponse{
		AttemptID: updated.ID,
		IsCorrect: isCorrect,
		Finished:  false,
		Progress:  summaryOf(updated),
		NextTask: &TaskPayload{
			TaskID:   next.ID,
			Position: next.Position,
			TaskVersion: TaskVersionPayload{
				ID:     nextVersion.ID,
				Prompt: nextVersion.Prompt,
				Data:   nextVersion.Data,
			},
		},
	}, nil
}

type FinishRequest struct {
	DurationSec int `json:"durationSec"`
}

type FinishResponse struct {
	AttemptID uint            `json:"attemptId"`
	Finished  bool            `json:"finished"`
	Summary   *AttemptSummary `json:"summary"`
}

// Finish marks the attempt finished and runs the finalization hooks.
// Finishing an already-finished attempt is an idempotent no-op returning the
// stored summary.
func (s *AttemptService) Finish(attemptID uint, req FinishRequest) (*FinishResponse, error) {
	if attemptID == 0 {
		return nil, util.ValidationError("attemptId is required")
	}

	attempt, err := s.AttemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("attempt not found")
		}
		return nil, err
	}

	if attempt.IsFinished {
		return &FinishResponse{
			AttemptID: attempt.ID,
			Finished:  true,
			Summary:   summaryOf(attempt),
		}, nil
	}

	if err := s.AttemptRepo.MarkFinished(attempt.ID, time.Now(), req.DurationSec); err != nil {
		return nil, err
	}
	finished, err := s.AttemptRepo.FindByID(attempt.ID)
	if err != nil {
		return nil, err
	}
	s.runFinalizationHooks(finished)

	return &FinishResponse{
		AttemptID: finished.ID,
		Finished:  true,
		Summary:   summaryOf(finished),
	}, nil
}

// runFinalizationHooks runs badge awarding then level unlock, in that order.
// Hook failures are logged and do not roll back the finalized attempt or
// abort the other hook.
func (s *AttemptService) runFinalizationHooks(attempt *model.Attempt) {
	monitoring.AttemptsFinished.Inc()

	if err := s.Achievement.AwardFinishBadges(attempt.ChildProfileID); err != nil {
		logger.Log.Error("badge awarding failed",
			zap.Uint("attemptId", attempt.ID),
			zap.Uint("childProfileId", attempt.ChildProfileID),
			zap.Error(err))
	}
	if err := s.ProgressSvc.ApplyLevelUnlock(attempt); err != nil {
		logger.Log.Error("level unlock failed",
			zap.Uint("attemptId", attempt.ID),
			zap.Uint("childProfileId", attempt.ChildProfileID),
			zap.Error(err))
	}
}

func summaryOf(attempt *model.Attempt) *AttemptSummary {
	return &AttemptSummary{
		Score:        attempt.Score,
		CorrectCount: attempt.CorrectCount,
		TotalCount:   attempt.TotalCount,
	}
}
