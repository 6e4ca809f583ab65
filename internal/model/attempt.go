package model

import "time"

// Attempt is one play-through of a game by a child. Created on start, mutated
// on each answer and on finish, never deleted.
// swagger:model Attempt
type Attempt struct {
	BaseModel
	ChildProfileID uint       `gorm:"index;type:bigint unsigned;not null" json:"childProfileId"`
	GameID         uint       `gorm:"index;type:bigint unsigned;not null" json:"gameId"`
	LevelID        *uint      `gorm:"index;type:bigint unsigned" json:"levelId,omitempty"`
	Score          int        `gorm:"default:0" json:"score"`
	CorrectCount   int        `gorm:"default:0" json:"correctCount"`
	TotalCount     int        `gorm:"default:0" json:"totalCount"`
	IsFinished     bool       `gorm:"default:false" json:"isFinished"`
	FinishedAt     *time.Time `json:"finishedAt,omitempty"`
	DurationSec    int        `gorm:"default:0" json:"durationSec"`
}

func (Attempt) TableName() string {
	return "attempts"
}
