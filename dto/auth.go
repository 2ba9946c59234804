package dto

import (
	"strings"
	"time"

	"esuka/models"
	"esuka/services"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() map[string]string {
	r.Email = strings.TrimSpace(r.Email)
	return ValidateStruct(r)
}

type LoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	TokenType    string      `json:"token_type,omitempty"`
	ExpiresAt    time.Time   `json:"expires_at"`
	User         UserSummary `json:"user"`
}

func NewLoginResponse(pair *services.TokenPair) LoginResponse {
	return LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresAt:    pair.ExpiresAt,
		User:         NewUserSummary(pair.User),
	}
}

// UserSummary is the profile shape returned by /auth/me, /profile and the
// admin user list.
type UserSummary struct {
	ID        uint           `json:"id"`
	Email     string         `json:"email"`
	Role      models.Role    `json:"role"`
	FullName  string         `json:"full_name"`
	Jabatan   models.Jabatan `json:"jabatan,omitempty"`
	NIP       string         `json:"nip,omitempty"`
	AvatarURL string         `json:"avatar_url,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func NewUserSummary(u models.User) UserSummary {
	return UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		FullName:  u.FullName,
		Jabatan:   u.Jabatan,
		NIP:       u.NIP,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

func NewUserSummaries(users []models.User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserSummary(u))
	}
	return out
}

type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *RegisterRequest) Validate() map[string]string {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	return ValidateStruct(r)
}

func (r *RegisterRequest) ToInput() services.RegisterInput {
	return services.RegisterInput{FullName: r.FullName, Email: r.Email, Password: r.Password}
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

func (r *RefreshTokenRequest) Validate() map[string]string {
	return ValidateStruct(r)
}

type PasswordResetRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

func (r *PasswordResetRequest) Validate() map[string]string {
	r.Email = strings.TrimSpace(r.Email)
	return ValidateStruct(r)
}

type PasswordResetSubmission struct {
	Token           string `json:"token" form:"token" validate:"required"`
	Password        string `json:"password" form:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required,eqfield=Password"`
}

func (r *PasswordResetSubmission) Validate() map[string]string {
	r.Token = strings.TrimSpace(r.Token)
	return ValidateStruct(r)
}
