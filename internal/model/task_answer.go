package model

import "encoding/json"

// TaskAnswer records one submission inside an attempt; immutable once created.
type TaskAnswer struct {
	BaseModel
	AttemptID     uint            `gorm:"index;type:bigint unsigned;not null" json:"attemptId"`
	TaskID        uint            `gorm:"index;type:bigint unsigned;not null" json:"taskId"`
	TaskVersionID uint            `gorm:"index;type:bigint unsigned;not null" json:"taskVersionId"`
	Answer        json.RawMessage `gorm:"type:json" json:"answer"`
	IsCorrect     bool            `gorm:"default:false" json:"isCorrect"`
}

func (TaskAnswer) TableName() string {
	return "task_answers"
}
