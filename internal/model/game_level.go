package model

// GameLevel is a numbered progression unit inside a game, scoped to a
// difficulty: (gameId, difficulty, levelNumber) identifies one level.
// swagger:model GameLevel
type GameLevel struct {
	BaseModel
	GameID      uint   `gorm:"index:idx_game_diff_number;type:bigint unsigned;not null" json:"gameId"`
	Difficulty  int    `gorm:"index:idx_game_diff_number;default:1" json:"difficulty"`
	LevelNumber int    `gorm:"index:idx_game_diff_number;not null" json:"levelNumber"`
	Title       string `gorm:"size:255" json:"title"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}

func (GameLevel) TableName() string {
	return "game_levels"
}
