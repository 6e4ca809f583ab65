package model

// LearningModule groups games by subject inside an age group (letters,
// numbers, logic, ...).
// swagger:model LearningModule
type LearningModule struct {
	BaseModel
	Code        string `gorm:"size:50;unique;not null" json:"code"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	AgeGroupID  uint   `gorm:"index;type:bigint unsigned" json:"ageGroupId"`
	Position    int    `gorm:"default:0" json:"position"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}

func (LearningModule) TableName() string {
	return "learning_modules"
}
