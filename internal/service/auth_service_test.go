package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anbusan19/wealth-empire-sub001/internal/config"
)

func testAuthService() *AuthService {
	return NewAuthService(&config.Config{
		DemoEmail:    "founder@example.com",
		DemoPassword: "password123",
		JWTSecret:    "test-secret",
	})
}

func TestAuthService_LoginAndValidate(t *testing.T) {
	svc := testAuthService()

	resp, err := svc.Login("founder@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.UserID)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, claims.UserID)
}

func TestAuthService_StableUserID(t *testing.T) {
	svc := testAuthService()

	first, err := svc.Login("founder@example.com", "password123")
	require.NoError(t, err)
	second, err := svc.Login("  FOUNDER@example.com ", "password123")
	require.NoError(t, err)

	// Same email resolves to the same saved reports across logins
	assert.Equal(t, first.UserID, second.UserID)
}

func TestAuthService_RejectsBadCredentials(t *testing.T) {
	svc := testAuthService()

	_, err := svc.Login("founder@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("someone@else.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RejectsBadToken(t *testing.T) {
	svc := testAuthService()

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewAuthService(&config.Config{
		DemoEmail:    "founder@example.com",
		DemoPassword: "password123",
		JWTSecret:    "different-secret",
	})
	resp, err := other.Login("founder@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.ValidateToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidCIN(t *testing.T) {
	assert.True(t, ValidCIN("U72900KA2019PTC123456"))
	assert.True(t, ValidCIN("L17110MH1973PLC019786"))

	assert.False(t, ValidCIN(""))
	assert.False(t, ValidCIN("U72900KA2019PTC12345"))   // too short
	assert.False(t, ValidCIN("X72900KA2019PTC123456"))  // bad listing flag
	assert.False(t, ValidCIN("U72900KA20I9PTC123456"))  // letter in year
	assert.False(t, ValidCIN("U72900KA2019PTC1234567")) // too long
}
