package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrPasswordResetTokenExpired = errors.New("password reset token expired")
	ErrPasswordResetTokenUsed    = errors.New("password reset token already used")
)

const PasswordResetTokenTTL = time.Hour

type PasswordResetToken struct {
	gorm.Model
	UserID    uint      `gorm:"not null;index"`
	TokenHash string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null;default:false"`
	UsedAt    *time.Time

	User User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}

func NewPasswordResetToken(userID uint, tokenHash string, issuedAt time.Time) PasswordResetToken {
	return PasswordResetToken{
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: issuedAt.Add(PasswordResetTokenTTL),
	}
}

func (t PasswordResetToken) IsExpired(reference time.Time) bool {
	return !reference.Before(t.ExpiresAt)
}

func (t PasswordResetToken) Validate(reference time.Time) error {
	if t.Used {
		return ErrPasswordResetTokenUsed
	}
	if t.IsExpired(reference) {
		return ErrPasswordResetTokenExpired
	}
	return nil
}

// Consume marks the token used with a conditional update, so two requests
// racing on the same token cannot both succeed.
func (t *PasswordResetToken) Consume(tx *gorm.DB, reference time.Time) error {
	if err := t.Validate(reference); err != nil {
		return err
	}

	usedAt := reference
	res := tx.Model(&PasswordResetToken{}).
		Where("id = ? AND used = ? AND expires_at > ?", t.ID, false, reference).
		Updates(map[string]any{"used": true, "used_at": &usedAt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPasswordResetTokenUsed
	}

	t.Used = true
	t.UsedAt = &usedAt
	return nil
}
