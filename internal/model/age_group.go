package model

// swagger:model AgeGroup
type AgeGroup struct {
	BaseModel
	Code   string `gorm:"size:50;unique;not null" json:"code"`
	Title  string `gorm:"size:255;not null" json:"title"`
	MinAge int    `gorm:"default:0" json:"minAge"`
	MaxAge int    `gorm:"default:0" json:"maxAge"`
}

func (AgeGroup) TableName() string {
	return "age_groups"
}
