package model

import "time"

// LessonProgress tracks a user's state in a single lesson.
// At most one row exists per (user, lesson); saves upsert on that key.
type LessonProgress struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	LessonID    string     `json:"lesson_id" gorm:"uniqueIndex:idx_user_lesson;size:100;not null"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CurrentStep int        `json:"current_step" gorm:"default:0"`
	CompletedAt *time.Time `json:"completed_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName keeps the original schema's table name.
func (LessonProgress) TableName() string {
	return "lesson_progress"
}
