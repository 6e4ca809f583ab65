package model

// Task is an ordered content unit within a game, optionally bound to a level.
// Position determines the sequence a player walks through.
// swagger:model Task
type Task struct {
	BaseModel
	GameID   uint  `gorm:"index;type:bigint unsigned;not null" json:"gameId"`
	LevelID  *uint `gorm:"index;type:bigint unsigned" json:"levelId,omitempty"`
	Position int   `gorm:"default:0" json:"position"`
	IsActive bool  `gorm:"default:true" json:"isActive"`
}

func (Task) TableName() string {
	return "tasks"
}
