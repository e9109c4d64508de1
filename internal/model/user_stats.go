package model

// UserStats is the single aggregate row per user. Created with zeroed
// counters at registration (or lazily on first stats read); no API path
// increments the counters, they are maintained outside this service.
type UserStats struct {
	ID                    uint `json:"-" gorm:"primaryKey"`
	UserID                uint `json:"user_id" gorm:"uniqueIndex;not null"`
	TotalLessonsCompleted int  `json:"total_lessons_completed" gorm:"default:0"`
	TotalTestsPassed      int  `json:"total_tests_passed" gorm:"default:0"`
	TotalAchievements     int  `json:"total_achievements" gorm:"default:0"`
	CurrentStreak         int  `json:"current_streak" gorm:"default:0"`
}

// TableName keeps the original schema's table name.
func (UserStats) TableName() string {
	return "user_stats"
}
