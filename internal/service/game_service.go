package service

import (
	"context"
	"errors"

	"kidquest_backend/internal/model"
	"kidquest_backend/internal/repository"
	"kidquest_backend/internal/util"

	"gorm.io/gorm"
)

// GameService holds the admin side of game and level management. Player-facing
// reads live in CatalogService and ProgressService.
type GameService struct {
	GameRepo   *repository.GameRepository
	LevelRepo  *repository.GameLevelRepository
	ModuleRepo *repository.LearningModuleRepository
	Catalog    *CatalogService
}

func NewGameService(
	gameRepo *repository.GameRepository,
	levelRepo *repository.GameLevelRepository,
	moduleRepo *repository.LearningModuleRepository,
	catalog *CatalogService,
) *GameService {
	return &GameService{
		GameRepo:   gameRepo,
		LevelRepo:  levelRepo,
		ModuleRepo: moduleRepo,
		Catalog:    catalog,
	}
}

type GameRequest struct {
	ModuleID    uint   `json:"moduleId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	CoverURL    string `json:"coverUrl"`
	IsActive    bool   `json:"isActive"`
}

func (s *GameService) GetGame(id uint) (*model.Game, error) {
	game, err := s.GameRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("game not found")
		}
		return nil, err
	}
	return game, nil
}

func (s *GameService) CreateGame(ctx context.Context, req GameRequest) (*model.Game, error) {
	if _, err := s.ModuleRepo.FindByID(req.ModuleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ValidationError("unknown module")
		}
		return nil, err
	}

	game := &model.Game{
		ModuleID:    req.ModuleID,
		Title:       req.Title,
		Description: req.Description,
		CoverURL:    req.CoverURL,
		IsActive:    req.IsActive,
	}
	if err := s.GameRepo.Create(game); err != nil {
		return nil, err
	}
	s.Catalog.InvalidateModuleGames(ctx, game.ModuleID)
	return game, nil
}

func (s *GameService) UpdateGame(ctx context.Context, id uint, req GameRequest) (*model.Game, error) {
	game, err := s.GameRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("game not found")
		}
		return nil, err
	}

	oldModuleID := game.ModuleID
	if req.ModuleID != oldModuleID {
		if _, err := s.ModuleRepo.FindByID(req.ModuleID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ValidationError("unknown module")
			}
			return nil, err
		}
	}

	game.ModuleID = req.ModuleID
	game.Title = req.Title
	game.Description = req.Description
	game.CoverURL = req.CoverURL
	game.IsActive = req.IsActive
	game.Module = nil
	if err := s.GameRepo.Update(game); err != nil {
		return nil, err
	}

	s.Catalog.InvalidateModuleGames(ctx, game.ModuleID)
	if oldModuleID != game.ModuleID {
		s.Catalog.InvalidateModuleGames(ctx, oldModuleID)
	}
	return game, nil
}

func (s *GameService) DeleteGame(ctx context.Context, id uint) error {
	game, err := s.GameRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundError("game not found")
		}
		return err
	}
	if err := s.GameRepo.Delete(id); err != nil {
		return err
	}
	s.Catalog.InvalidateModuleGames(ctx, game.ModuleID)
	return nil
}

type GameLevelRequest struct {
	Difficulty  int    `json:"difficulty" binding:"required"`
	LevelNumber int    `json:"levelNumber" binding:"required"`
	Title       string `json:"title"`
	IsActive    bool   `json:"isActive"`
}

func (s *GameService) CreateLevel(gameID uint, req GameLevelRequest) (*model.GameLevel, error) {
	if _, err := s.GameRepo.FindByID(gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("game not found")
		}
		return nil, err
	}
	if req.Difficulty <= 0 {
		return nil, util.ValidationError("difficulty must be positive")
	}
	if req.LevelNumber <= 0 {
		return nil, util.ValidationError("levelNumber must be positive")
	}
	if existing, err := s.LevelRepo.FindByNumber(gameID, req.Difficulty, req.LevelNumber); err == nil && existing != nil {
		return nil, util.ConflictError("level number already exists for this difficulty")
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	level := &model.GameLevel{
		GameID:      gameID,
		Difficulty:  req.Difficulty,
		LevelNumber: req.LevelNumber,
		Title:       req.Title,
		IsActive:    req.IsActive,
	}
	if err := s.LevelRepo.Create(level); err != nil {
		return nil, err
	}
	return level, nil
}

func (s *GameService) UpdateLevel(id uint, req GameLevelRequest) (*model.GameLevel, error) {
	level, err := s.LevelRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("level not found")
		}
		return nil, err
	}
	if req.Difficulty <= 0 {
		return nil, util.ValidationError("difficulty must be positive")
	}
	if req.LevelNumber <= 0 {
		return nil, util.ValidationError("levelNumber must be positive")
	}

	level.Difficulty = req.Difficulty
	level.LevelNumber = req.LevelNumber
	level.Title = req.Title
	level.IsActive = req.IsActive
	if err := s.LevelRepo.Update(level); err != nil {
		return nil, err
	}
	return level, nil
}

func (s *GameService) DeleteLevel(id uint) error {
	if _, err := s.LevelRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundError("level not found")
		}
		return err
	}
	return s.LevelRepo.Delete(id)
}
