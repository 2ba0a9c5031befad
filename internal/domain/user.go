package domain

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:32;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:128;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`

	Matches    []Match           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Sessions   []PracticeSession `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Strategies []Strategy        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
