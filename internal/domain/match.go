package domain

import "time"

type Match struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Map       string    `gorm:"size:100;not null" json:"map"`
	Agent     string    `gorm:"size:50;not null" json:"agent"`
	Score     int       `gorm:"not null" json:"score"`
	Notes     string    `gorm:"type:text" json:"notes,omitempty"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
