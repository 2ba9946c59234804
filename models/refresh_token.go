package models

import (
	"time"

	"gorm.io/gorm"
)

// RefreshToken stores the sha256 of an issued refresh token. Signing out
// deletes the row, which revokes the token.
type RefreshToken struct {
	gorm.Model
	TokenHash string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	UserID    uint      `gorm:"not null;index"`
	User      User      `gorm:"constraint:OnDelete:CASCADE;"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (t RefreshToken) IsExpired(reference time.Time) bool {
	return !reference.Before(t.ExpiresAt)
}
