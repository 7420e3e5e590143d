package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"financial-assistant/internal/config"
	"financial-assistant/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrNotAdminToken     = errors.New("token does not grant admin access")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// TokenService mints and validates HS256 admin tokens
type TokenService struct {
	secret     []byte
	issuer     string
	defaultTTL time.Duration
	now        func() time.Time
}

// NewTokenService creates a new token service from security configuration
func NewTokenService(cfg *config.SecurityConfig) TokenServiceInterface {
	return &TokenService{
		secret:     []byte(cfg.AdminJWTSecret),
		issuer:     cfg.JWTIssuer,
		defaultTTL: cfg.AdminTokenTTL,
		now:        time.Now,
	}
}

// GenerateAdminToken signs an admin token for subject. A zero ttl uses the configured default.
func (ts *TokenService) GenerateAdminToken(subject string, ttl time.Duration) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, errors.New("subject cannot be empty")
	}
	if ttl <= 0 {
		ttl = ts.defaultTTL
	}

	now := ts.now()
	expiresAt := now.Add(ttl)

	claims := models.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.issuer,
			Subject:   subject,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
		},
		Role: models.RoleAdmin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ts.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign admin token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateAdminToken verifies signature, expiry, issuer and role
func (ts *TokenService) ValidateAdminToken(tokenString string) (*models.AdminClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.AdminClaims{}, ts.keyFunc,
		jwt.WithTimeFunc(ts.now),
	)
	if err != nil {
		return nil, ts.mapTokenError(err)
	}

	claims, ok := token.Claims.(*models.AdminClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Issuer != ts.issuer {
		return nil, ErrInvalidIssuer
	}

	if claims.Role != models.RoleAdmin {
		return nil, ErrNotAdminToken
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts the JWT token from the Authorization header
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidAuthHeader
	}

	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

func (ts *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return ts.secret, nil
}

func (ts *TokenService) mapTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrExpiredToken
	}
	return fmt.Errorf("%w: %v", ErrInvalidToken, err)
}
