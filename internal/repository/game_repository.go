package repository

import (
	"kidquest_backend/internal/model"

	"gorm.io/gorm"
)

type GameRepository struct {
	DB *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{DB: db}
}

func (r *GameRepository) Create(game *model.Game) error {
	return r.DB.Create(game).Error
}

func (r *GameRepository) FindByID(id uint) (*model.Game, error) {
	var game model.Game
	err := r.DB.Preload("Module").First(&game, id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *GameRepository) FindActiveByID(id uint) (*model.Game, error) {
	var game model.Game
	err := r.DB.Preload("Module").Where("is_active = ?", true).First(&game, id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *GameRepository) ListByModule(moduleID uint) ([]model.Game, error) {
	var games []model.Game
	err := r.DB.Where("module_id = ? AND is_active = ?", moduleID, true).
		Order("created_at asc").
		Find(&games).Error
	return games, err
}

func (r *GameRepository) Update(game *model.Game) error {
	return r.DB.Save(game).Error
}

func (r *GameRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Game{}, id).Error
}

type GameLevelRepository struct {
	DB *gorm.DB
}

func NewGameLevelRepository(db *gorm.DB) *GameLevelRepository {
	return &GameLevelRepository{DB: db}
}

func (r *GameLevelRepository) Create(level *model.GameLevel) error {
	return r.DB.Create(level).Error
}

func (r *GameLevelRepository) FindByID(id uint) (*model.GameLevel, error) {
	var level model.GameLevel
	err := r.DB.First(&level, id).Error
	if err != nil {
		return nil, err
	}
	return &level, nil
}

// FindActiveByID ignores soft-deleted and inactive levels.
func (r *GameLevelRepository) FindActiveByID(id uint) (*model.GameLevel, error) {
	var level model.GameLevel
	err := r.DB.Where("is_active = ?", true).First(&level, id).Error
	if err != nil {
		return nil, err
	}
	return &level, nil
}

func (r *GameLevelRepository) FindByNumber(gameID uint, difficulty, levelNumber int) (*model.GameLevel, error) {
	var level model.GameLevel
	err := r.DB.Where("game_id = ? AND difficulty = ? AND level_number = ? AND is_active = ?",
		gameID, difficulty, levelNumber, true).
		First(&level).Error
	if err != nil {
		return nil, err
	}
	return &level, nil
}

func (r *GameLevelRepository) FindLowest(gameID uint, difficulty int) (*model.GameLevel, error) {
	var level model.GameLevel
	err := r.DB.Where("game_id = ? AND difficulty = ? AND is_active = ?", gameID, difficulty, true).
		Order("level_number asc").
		First(&level).Error
	if err != nil {
		return nil, err
	}
	return &level, nil
}

func (r *GameLevelRepository) ListByGameAndDifficulty(gameID uint, difficulty int) ([]model.GameLevel, error) {
	var levels []model.GameLevel
	err := r.DB.Where("game_id = ? AND difficulty = ? AND is_active = ?", gameID, difficulty, true).
		Order("level_number asc").
		Find(&levels).Error
	return levels, err
}

func (r *GameLevelRepository) Update(level *model.GameLevel) error {
	return r.DB.Save(level).Error
}

func (r *GameLevelRepository) Delete(id uint) error {
	return r.DB.Delete(&model.GameLevel{}, id).Error
}
