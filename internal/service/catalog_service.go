package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kidquest_backend/internal/model"
	"kidquest_backend/internal/repository"
	"kidquest_backend/internal/util"
	"kidquest_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	moduleGamesKeyPrefix = "catalog:module_games:"
	catalogCacheTTL      = 10 * time.Minute
)

// CatalogService serves the browsable content tree (age groups → modules →
// games). The games-per-module listing is redis-cached; admin writes
// invalidate it.
type CatalogService struct {
	AgeGroupRepo *repository.AgeGroupRepository
	ModuleRepo   *repository.LearningModuleRepository
	GameRepo     *repository.GameRepository
	Redis        *redis.Client
}

func NewCatalogService(
	ageGroupRepo *repository.AgeGroupRepository,
	moduleRepo *repository.LearningModuleRepository,
	gameRepo *repository.GameRepository,
	rdb *redis.Client,
) *CatalogService {
	return &CatalogService{
		AgeGroupRepo: ageGroupRepo,
		ModuleRepo:   moduleRepo,
		GameRepo:     gameRepo,
		Redis:        rdb,
	}
}

func (s *CatalogService) ListAgeGroups() ([]model.AgeGroup, error) {
	return s.AgeGroupRepo.List()
}

func (s *CatalogService) ListModules(ageGroupID uint) ([]model.LearningModule, error) {
	if ageGroupID > 0 {
		return s.ModuleRepo.ListByAgeGroup(ageGroupID)
	}
	return s.ModuleRepo.List()
}

func (s *CatalogService) ListGamesByModule(ctx context.Context, moduleID uint) ([]model.Game, error) {
	if _, err := s.ModuleRepo.FindByID(moduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("module not found")
		}
		return nil, err
	}

	key := fmt.Sprintf("%s%d", moduleGamesKeyPrefix, moduleID)
	if cached, err := s.Redis.Get(ctx, key).Result(); err == nil {
		var games []model.Game
		if err := json.Unmarshal([]byte(cached), &games); err == nil {
			return games, nil
		}
	} else if err != redis.Nil {
		logger.Log.Warn("catalog cache read failed", zap.Error(err))
	}

	games, err := s.GameRepo.ListByModule(moduleID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(games); err == nil {
		if err := s.Redis.Set(ctx, key, payload, catalogCacheTTL).Err(); err != nil {
			logger.Log.Warn("catalog cache write failed", zap.Error(err))
		}
	}

	return games, nil
}

// InvalidateModuleGames drops the cached game listing after an admin write.
func (s *CatalogService) InvalidateModuleGames(ctx context.Context, moduleID uint) {
	key := fmt.Sprintf("%s%d", moduleGamesKeyPrefix, moduleID)
	if err := s.Redis.Del(ctx, key).Err(); err != nil {
		logger.Log.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}

// Admin CRUD for age groups and modules.

type AgeGroupRequest struct {
	Code   string `json:"code" binding:"required"`
	Title  string `json:"title" binding:"required"`
	MinAge int    `json:"minAge"`
	MaxAge int    `json:"maxAge"`
}

func (s *CatalogService) CreateAgeGroup(req AgeGroupRequest) (*model.AgeGroup, error) {
	if req.MaxAge > 0 && req.MaxAge < req.MinAge {
		return nil, util.ValidationError("maxAge must not be below minAge")
	}
	group := &model.AgeGroup{Code: req.Code, Title: req.Title, MinAge: req.MinAge, MaxAge: req.MaxAge}
	if err := s.AgeGroupRepo.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *CatalogService) UpdateAgeGroup(id uint, req AgeGroupRequest) (*model.AgeGroup, error) {
	group, err := s.AgeGroupRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("age group not found")
		}
		return nil, err
	}
	group.Code = req.Code
	group.Title = req.Title
	group.MinAge = req.MinAge
	group.MaxAge = req.MaxAge
	if err := s.AgeGroupRepo.Update(group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *CatalogService) DeleteAgeGroup(id uint) error {
	return s.AgeGroupRepo.Delete(id)
}

type LearningModuleRequest struct {
	Code        string `json:"code" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	AgeGroupID  uint   `json:"ageGroupId"`
	Position    int    `json:"position"`
	IsActive    bool   `json:"isActive"`
}

func (s *CatalogService) CreateModule(req LearningModuleRequest) (*model.LearningModule, error) {
	if req.AgeGroupID != 0 {
		if _, err := s.AgeGroupRepo.FindByID(req.AgeGroupID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ValidationError("unknown age group")
			}
			return nil, err
		}
	}
	module := &model.LearningModule{
		Code:        req.Code,
		Title:       req.Title,
		Description: req.Description,
		AgeGroupID:  req.AgeGroupID,
		Position:    req.Position,
		IsActive:    req.IsActive,
	}
	if err := s.ModuleRepo.Create(module); err != nil {
		return nil, err
	}
	return module, nil
}

func (s *CatalogService) UpdateModule(id uint, req LearningModuleRequest) (*model.LearningModule, error) {
	module, err := s.ModuleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("module not found")
		}
		return nil, err
	}
	module.Code = req.Code
	module.Title = req.Title
	module.Description = req.Description
	module.AgeGroupID = req.AgeGroupID
	module.Position = req.Position
	module.IsActive = req.IsActive
	if err := s.ModuleRepo.Update(module); err != nil {
		return nil, err
	}
	return module, nil
}

func (s *CatalogService) DeleteModule(id uint) error {
	return s.ModuleRepo.Delete(id)
}
