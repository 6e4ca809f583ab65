package model

// ChildLevelProgress tracks the highest unlocked level per
// (child, game, difficulty). MaxUnlockedLevel starts at 1 and never decreases.
type ChildLevelProgress struct {
	BaseModel
	ChildProfileID   uint `gorm:"uniqueIndex:idx_child_game_diff;type:bigint unsigned;not null" json:"childProfileId"`
	GameID           uint `gorm:"uniqueIndex:idx_child_game_diff;type:bigint unsigned;not null" json:"gameId"`
	Difficulty       int  `gorm:"uniqueIndex:idx_child_game_diff;default:1" json:"difficulty"`
	MaxUnlockedLevel int  `gorm:"default:1" json:"maxUnlockedLevel"`
}

func (ChildLevelProgress) TableName() string {
	return "child_level_progress"
}
