package utils

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"esuka/config"
	"esuka/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type JWTClaims struct {
	UserID    uint           `json:"user_id"`
	Role      models.Role    `json:"role"`
	Email     string         `json:"email"`
	FullName  string         `json:"full_name"`
	Jabatan   models.Jabatan `json:"jabatan,omitempty"`
	TokenType string         `json:"token_type,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 access and refresh tokens.
type TokenManager struct {
	cfg config.JWTConfig
	now func() time.Time
}

func NewTokenManager(cfg config.JWTConfig) *TokenManager {
	return &TokenManager{cfg: cfg, now: time.Now}
}

func (m *TokenManager) AccessTTL() time.Duration  { return m.cfg.AccessTokenTTL }
func (m *TokenManager) RefreshTTL() time.Duration { return m.cfg.RefreshTokenTTL }

func (m *TokenManager) GenerateAccessToken(user models.User) (string, *JWTClaims, error) {
	return m.generateToken(user, TokenTypeAccess, m.cfg.AccessTokenTTL)
}

func (m *TokenManager) VerifyAccessToken(tokenString string) (*JWTClaims, error) {
	return m.verifyToken(tokenString, TokenTypeAccess)
}

func (m *TokenManager) GenerateRefreshToken(user models.User) (string, *JWTClaims, error) {
	return m.generateToken(user, TokenTypeRefresh, m.cfg.RefreshTokenTTL)
}

func (m *TokenManager) VerifyRefreshToken(tokenString string) (*JWTClaims, error) {
	return m.verifyToken(tokenString, TokenTypeRefresh)
}

func (m *TokenManager) generateToken(user models.User, tokenType string, ttl time.Duration) (string, *JWTClaims, error) {
	now := m.now()

	claims := &JWTClaims{
		UserID:    user.ID,
		Role:      user.Role,
		Email:     user.Email,
		FullName:  user.FullName,
		Jabatan:   user.Jabatan,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.cfg.Issuer,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.cfg.SecretKey)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

func (m *TokenManager) verifyToken(tokenString, expectedType string) (*JWTClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}

	claims := &JWTClaims{}
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			return m.cfg.SecretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.cfg.Issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, err
	}

	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	if expectedType != "" && !strings.EqualFold(claims.TokenType, expectedType) {
		return nil, errors.New("invalid token type")
	}

	return claims, nil
}
