package model

// ChildProfile belongs to a parent account; children have no credentials of
// their own, every request carries the parent JWT plus an explicit profile id.
// swagger:model ChildProfile
type ChildProfile struct {
	BaseModel
	UserID     uint   `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Name       string `gorm:"size:100;not null" json:"name"`
	Avatar     string `gorm:"size:255" json:"avatar"`
	AgeGroupID uint   `gorm:"index;type:bigint unsigned" json:"ageGroupId"`
}

func (ChildProfile) TableName() string {
	return "child_profiles"
}
