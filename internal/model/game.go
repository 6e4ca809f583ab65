package model

// swagger:model Game
type Game struct {
	BaseModel
	ModuleID    uint   `gorm:"index;type:bigint unsigned;not null" json:"moduleId"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	CoverURL    string `gorm:"size:255" json:"coverUrl"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	Module *LearningModule `gorm:"foreignKey:ModuleID" json:"module,omitempty"`
}

func (Game) TableName() string {
	return "games"
}
