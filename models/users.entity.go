package models

import "gorm.io/gorm"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is the profile row of an account. Credentials live in PasswordHash,
// everything else is profile data managed by this service.
type User struct {
	gorm.Model
	FullName     string  `gorm:"type:varchar(150);index"`
	Email        string  `gorm:"type:varchar(191);uniqueIndex;not null"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	Role         Role    `gorm:"type:varchar(20);not null;default:'user';index"`
	Jabatan      Jabatan `gorm:"type:varchar(150);index"`
	NIP          string  `gorm:"column:nip;type:varchar(50)"`
	AvatarURL    string  `gorm:"type:varchar(500)"`
}

func (User) TableName() string {
	return "profiles"
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// DisplayName falls back to the email when no full name was set.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}
