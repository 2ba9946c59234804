package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"esuka/models"
	"esuka/utils"

	"gorm.io/gorm"
)

// Mailer delivers password reset links.
type Mailer interface {
	SendPasswordResetEmail(toEmail, fullName, resetLink string) error
}

type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	TokenType    string      `json:"token_type"`
	ExpiresAt    time.Time   `json:"expires_at"`
	User         models.User `json:"-"`
}

type AuthService struct {
	db       *gorm.DB
	tokens   *utils.TokenManager
	mailer   Mailer
	resetURL string
	now      func() time.Time
}

func NewAuthService(db *gorm.DB, tokens *utils.TokenManager, mailer Mailer, resetURL string) *AuthService {
	return &AuthService{db: db, tokens: tokens, mailer: mailer, resetURL: resetURL, now: time.Now}
}

// Register creates a profile with role user. The first account of a fresh
// install becomes admin.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
		Role:         models.RoleUser,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			user.Role = models.RoleAdmin
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if utils.IsDuplicateError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(ctx, s.db.WithContext(ctx), user)
}

// Refresh rotates a refresh token: the presented one is revoked and a new
// pair is issued.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	var pair *TokenPair
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stored models.RefreshToken
		if err := tx.Where("token_hash = ?", utils.HashOpaqueToken(refreshToken)).First(&stored).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidToken
			}
			return err
		}
		if stored.IsExpired(s.now()) || stored.UserID != claims.UserID {
			return ErrInvalidToken
		}
		if err := tx.Unscoped().Delete(&stored).Error; err != nil {
			return err
		}

		var user models.User
		if err := tx.First(&user, stored.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidToken
			}
			return err
		}

		var err error
		pair, err = s.issue(ctx, tx, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout revokes the refresh token. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.db.WithContext(ctx).
		Where("token_hash = ?", utils.HashOpaqueToken(refreshToken)).
		Unscoped().
		Delete(&models.RefreshToken{}).Error
}

// ResolveActor loads the current profile behind verified access claims.
// Role and jabatan come from the row, so changes apply without a new login.
func (s *AuthService) ResolveActor(ctx context.Context, claims *utils.JWTClaims) (*Actor, error) {
	if claims == nil {
		return nil, ErrUnauthorized
	}
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	actor := ActorFromUser(user)
	return &actor, nil
}

func (s *AuthService) Me(ctx context.Context, actor Actor) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, actor.ID).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// ForgotPassword issues a one-hour reset token and mails the link. Unknown
// emails succeed silently so the endpoint does not reveal accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token, digest, err := utils.NewOpaqueToken()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	reset := models.NewPasswordResetToken(user.ID, digest, s.now())
	if err := s.db.WithContext(ctx).Create(&reset).Error; err != nil {
		return err
	}

	if s.mailer == nil {
		log.Printf("⚠️ password reset requested for user %d but no mailer is configured", user.ID)
		return nil
	}
	return s.mailer.SendPasswordResetEmail(user.Email, user.FullName, s.resetLink(token))
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reset models.PasswordResetToken
		if err := tx.Where("token_hash = ?", utils.HashOpaqueToken(token)).First(&reset).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidToken
			}
			return err
		}

		if err := reset.Consume(tx, s.now()); err != nil {
			if errors.Is(err, models.ErrPasswordResetTokenUsed) || errors.Is(err, models.ErrPasswordResetTokenExpired) {
				return ErrInvalidToken
			}
			return err
		}

		if err := tx.Model(&models.User{}).Where("id = ?", reset.UserID).Update("password_hash", hash).Error; err != nil {
			return err
		}
		// Sessions opened with the old password end here.
		return tx.Where("user_id = ?", reset.UserID).Unscoped().Delete(&models.RefreshToken{}).Error
	})
}

func (s *AuthService) issue(ctx context.Context, tx *gorm.DB, user models.User) (*TokenPair, error) {
	access, claims, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refresh, refreshClaims, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	stored := models.RefreshToken{
		TokenHash: utils.HashOpaqueToken(refresh),
		UserID:    user.ID,
		ExpiresAt: refreshClaims.ExpiresAt.Time,
	}
	if err := tx.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresAt:    claims.ExpiresAt.Time,
		User:         user,
	}, nil
}

func (s *AuthService) resetLink(token string) string {
	sep := "?"
	if strings.Contains(s.resetURL, "?") {
		sep = "&"
	}
	return s.resetURL + sep + "token=" + url.QueryEscape(token)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
