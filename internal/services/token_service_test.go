package services

import (
	"strings"
	"testing"
	"time"

	"financial-assistant/internal/config"
	"financial-assistant/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	cfg     *config.SecurityConfig
	service TokenServiceInterface
}

func (s *TokenServiceTestSuite) SetupTest() {
	s.cfg = &config.SecurityConfig{
		AdminJWTSecret: strings.Repeat("s", 64),
		JWTIssuer:      "test-issuer",
		AdminTokenTTL:  time.Hour,
	}
	s.service = NewTokenService(s.cfg)
}

func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) TestGenerateAndValidate() {
	token, expiresAt, err := s.service.GenerateAdminToken("ops@example.com", 0)
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.WithinDuration(time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := s.service.ValidateAdminToken(token)
	s.Require().NoError(err)
	s.Equal("ops@example.com", claims.Subject)
	s.Equal("test-issuer", claims.Issuer)
	s.Equal(models.RoleAdmin, claims.Role)
	s.NotEmpty(claims.ID)
}

func (s *TokenServiceTestSuite) TestGenerate_EmptySubject() {
	_, _, err := s.service.GenerateAdminToken("", time.Minute)
	s.Error(err)
}

func (s *TokenServiceTestSuite) TestValidate_Expired() {
	ts := s.service.(*TokenService)
	ts.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := ts.GenerateAdminToken("ops", time.Minute)
	s.Require().NoError(err)

	ts.now = time.Now
	_, err = ts.ValidateAdminToken(token)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceTestSuite) TestValidate_WrongSecret() {
	other := NewTokenService(&config.SecurityConfig{
		AdminJWTSecret: strings.Repeat("x", 64),
		JWTIssuer:      "test-issuer",
		AdminTokenTTL:  time.Hour,
	})
	token, _, err := other.GenerateAdminToken("ops", 0)
	s.Require().NoError(err)

	_, err = s.service.ValidateAdminToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidate_WrongIssuer() {
	other := NewTokenService(&config.SecurityConfig{
		AdminJWTSecret: s.cfg.AdminJWTSecret,
		JWTIssuer:      "someone-else",
		AdminTokenTTL:  time.Hour,
	})
	token, _, err := other.GenerateAdminToken("ops", 0)
	s.Require().NoError(err)

	_, err = s.service.ValidateAdminToken(token)
	s.ErrorIs(err, ErrInvalidIssuer)
}

func (s *TokenServiceTestSuite) TestValidate_MissingRole() {
	claims := models.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Subject:   "viewer",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.AdminJWTSecret))
	s.Require().NoError(err)

	_, err = s.service.ValidateAdminToken(token)
	s.ErrorIs(err, ErrNotAdminToken)
}

func (s *TokenServiceTestSuite) TestValidate_Empty() {
	_, err := s.service.ValidateAdminToken("")
	s.ErrorIs(err, ErrEmptyToken)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "basic scheme", header: "Basic dXNlcg==", wantErr: true},
		{name: "missing token", header: "Bearer   ", wantErr: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := s.service.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				s.ErrorIs(err, ErrInvalidAuthHeader)
				return
			}
			s.NoError(err)
			s.Equal(tt.want, got)
		})
	}
}
