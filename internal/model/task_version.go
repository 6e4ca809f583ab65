package model

import "encoding/json"

// TaskVersion is one revision of a task's content. At most one version per
// (task, difficulty) is current; that one is served to players.
// swagger:model TaskVersion
type TaskVersion struct {
	BaseModel
	TaskID        uint            `gorm:"index:idx_task_difficulty;type:bigint unsigned;not null" json:"taskId"`
	Version       int             `gorm:"default:1" json:"version"`
	Difficulty    int             `gorm:"index:idx_task_difficulty;default:1" json:"difficulty"`
	Prompt        string          `gorm:"type:text" json:"prompt"`
	Data          json.RawMessage `gorm:"type:json" json:"data"`
	CorrectAnswer json.RawMessage `gorm:"type:json" json:"-"`
	IsCurrent     bool            `gorm:"index:idx_task_difficulty;default:false" json:"isCurrent"`
}

func (TaskVersion) TableName() string {
	return "task_versions"
}
