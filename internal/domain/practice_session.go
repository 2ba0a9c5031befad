package domain

import "time"

// PracticeSession is a logged practice block, stored in the sessions table.
type PracticeSession struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"size:128;not null" json:"title"`
	FocusArea       string    `gorm:"size:128;not null" json:"focus_area"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Notes           string    `gorm:"type:text" json:"notes,omitempty"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (PracticeSession) TableName() string { return "sessions" }
