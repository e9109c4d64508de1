package model

import "time"

// Achievement is a badge earned once per user. Duplicate grants are
// absorbed by the (user, name) uniqueness constraint; rows are never
// mutated or deleted.
type Achievement struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"uniqueIndex:idx_user_achievement;not null"`
	AchievementName string    `json:"achievement_name" gorm:"uniqueIndex:idx_user_achievement;size:100;not null"`
	AchievementIcon string    `json:"achievement_icon" gorm:"size:255"`
	EarnedAt        time.Time `json:"earned_at" gorm:"autoCreateTime"`
}

// TableName keeps the original schema's table name.
func (Achievement) TableName() string {
	return "achievements"
}
