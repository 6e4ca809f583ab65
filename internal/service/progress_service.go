package service

import (
	"errors"

	"kidquest_backend/internal/model"
	"kidquest_backend/internal/repository"
	"kidquest_backend/internal/util"

	"gorm.io/gorm"
)

// Level listing states.
const (
	LevelStateLocked    = "locked"
	LevelStateUnlocked  = "unlocked"
	LevelStateCompleted = "completed"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	GameRepo     *repository.GameRepository
	LevelRepo    *repository.GameLevelRepository
	AttemptRepo  *repository.AttemptRepository
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	gameRepo *repository.GameRepository,
	levelRepo *repository.GameLevelRepository,
	attemptRepo *repository.AttemptRepository,
) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		GameRepo:     gameRepo,
		LevelRepo:    levelRepo,
		AttemptRepo:  attemptRepo,
	}
}

// ApplyLevelUnlock advances maxUnlockedLevel after a successful finished
// attempt on a level. Attempts without a level, or with no correct answer,
// never move progress.
func (s *ProgressService) ApplyLevelUnlock(attempt *model.Attempt) error {
	if !attempt.IsFinished || attempt.CorrectCount == 0 || attempt.LevelID == nil {
		return nil
	}

	level, err := s.LevelRepo.FindByID(*attempt.LevelID)
	if err != nil {
		return err
	}

	progress, err := s.ProgressRepo.FindOrCreate(attempt.ChildProfileID, attempt.GameID, level.Difficulty)
	if err != nil {
		return err
	}

	target, changed := nextUnlockedLevel(progress.MaxUnlockedLevel, level.LevelNumber)
	if !changed {
		return nil
	}
	return s.ProgressRepo.UpdateMaxUnlockedLevel(attempt.ChildProfileID, attempt.GameID, level.Difficulty, target)
}

// nextUnlockedLevel returns levelNumber+1 and whether that beats the current
// maximum; equal or lower targets are a no-op.
func nextUnlockedLevel(currentMax, completedLevelNumber int) (int, bool) {
	target := completedLevelNumber + 1
	return target, target > currentMax
}

type LevelView struct {
	Level       int    `json:"level"`
	Title       string `json:"title"`
	State       string `json:"state"`
	IsCompleted bool   `json:"isCompleted"`
}

type GameLevelsResponse struct {
	GameID           uint        `json:"gameId"`
	GameTitle        string      `json:"gameTitle"`
	ModuleCode       string      `json:"moduleCode"`
	Difficulty       int         `json:"difficulty"`
	Levels           []LevelView `json:"levels"`
	MaxUnlockedLevel int         `json:"maxUnlockedLevel"`
}

// GameLevels lists a game's levels for one difficulty, classified per child.
// With no child, maxUnlockedLevel defaults to 1 and no attempts are looked up.
func (s *ProgressService) GameLevels(gameID uint, difficulty int, childProfileID uint) (*GameLevelsResponse, error) {
	if difficulty <= 0 {
		return nil, util.ValidationError("difficulty must be a positive integer")
	}

	game, err := s.GameRepo.FindActiveByID(gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("game not found")
		}
		return nil, err
	}

	levels, err := s.LevelRepo.ListByGameAndDifficulty(gameID, difficulty)
	if err != nil {
		return nil, err
	}

	maxUnlocked := 1
	completed := make(map[uint]struct{})
	if childProfileID > 0 {
		progress, err := s.ProgressRepo.Find(childProfileID, gameID, difficulty)
		if err == nil {
			maxUnlocked = progress.MaxUnlockedLevel
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		attemptedLevels, err := s.AttemptRepo.LevelIDsWithAttempts(childProfileID, gameID, difficulty)
		if err != nil {
			return nil, err
		}
		for _, id := range attemptedLevels {
			completed[id] = struct{}{}
		}
	}

	views := make([]LevelView, len(levels))
	for i, level := range levels {
		_, isCompleted := completed[level.ID]
		state := classifyLevel(isCompleted, level.LevelNumber, maxUnlocked)
		views[i] = LevelView{
			Level:       level.LevelNumber,
			Title:       level.Title,
			State:       state,
			IsCompleted: state == LevelStateCompleted,
		}
	}

	moduleCode := ""
	if game.Module != nil {
		moduleCode = game.Module.Code
	}

	return &GameLevelsResponse{
		GameID:           game.ID,
		GameTitle:        game.Title,
		ModuleCode:       moduleCode,
		Difficulty:       difficulty,
		Levels:           views,
		MaxUnlockedLevel: maxUnlocked,
	}, nil
}

// classifyLevel: any recorded attempt marks the level completed, even when
// its number is above maxUnlockedLevel; otherwise the unlock threshold
// decides.
func classifyLevel(completed bool, levelNumber, maxUnlocked int) string {
	if completed {
		return LevelStateCompleted
	}
	if levelNumber <= maxUnlocked {
		return LevelStateUnlocked
	}
	return LevelStateLocked
}
