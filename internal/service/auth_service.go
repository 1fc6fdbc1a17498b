package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/anbusan19/wealth-empire-sub001/internal/config"
	"github.com/anbusan19/wealth-empire-sub001/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles user authentication
type AuthService struct {
	demoEmail    string
	demoPassword string
	jwtSecret    []byte
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		demoEmail:    cfg.DemoEmail,
		demoPassword: cfg.DemoPassword,
		jwtSecret:    []byte(cfg.JWTSecret),
	}
}

// Login validates credentials and returns a token. The user id is derived
// from the email so repeat logins keep resolving to the same saved reports.
func (s *AuthService) Login(email, password string) (*model.LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email != s.demoEmail || password != s.demoPassword {
		return nil, ErrInvalidCredentials
	}

	userID := "user_" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(email)).String()[:8]

	claims := &model.UserClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:  tokenString,
		UserID: userID,
	}, nil
}

// ValidateToken validates a user JWT and returns claims
func (s *AuthService) ValidateToken(tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
