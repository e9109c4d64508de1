package model

import "time"

// TestResult is one test attempt. Append-only: repeat attempts for the
// same test are all retained.
type TestResult struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"index;not null"`
	TestID         string    `json:"test_id" gorm:"size:100;not null"`
	Score          int       `json:"score" gorm:"not null"`
	TotalQuestions int       `json:"total_questions" gorm:"not null"`
	Percentage     float64   `json:"percentage" gorm:"not null"`
	Passed         bool      `json:"passed" gorm:"default:false"`
	CompletedAt    time.Time `json:"completed_at" gorm:"autoCreateTime"`
}

// TableName keeps the original schema's table name.
func (TestResult) TableName() string {
	return "test_results"
}
