package model

// Badge code encodes the rule: <METRIC_ALIAS>_<THRESHOLD>, e.g. FINISHED_5 or
// TOTAL_STARS_100. Codes that do not parse are displayed as never earned.
// swagger:model Badge
type Badge struct {
	BaseModel
	Code        string `gorm:"size:100;unique;not null" json:"code"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"size:255" json:"icon"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`
}

func (Badge) TableName() string {
	return "badges"
}

// ChildBadge records an awarded badge; the unique pair makes awarding
// idempotent.
type ChildBadge struct {
	BaseModel
	ChildProfileID uint `gorm:"uniqueIndex:idx_child_badge;type:bigint unsigned;not null" json:"childProfileId"`
	BadgeID        uint `gorm:"uniqueIndex:idx_child_badge;type:bigint unsigned;not null" json:"badgeId"`
}

func (ChildBadge) TableName() string {
	return "child_badges"
}
