package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	req := require.New(t)
	service := NewJWTService("test-secret-key", 24)

	userID := uuid.New()
	token, err := service.GenerateToken(userID, "achen@ucdavis.edu")
	req.NoError(err)
	req.NotEmpty(token)

	claims, err := service.ValidateToken(token)
	req.NoError(err)
	req.Equal(userID, claims.UserID)
	req.Equal("achen@ucdavis.edu", claims.Email)
}

func TestJWTService_ValidateToken_Invalid(t *testing.T) {
	service := NewJWTService("test-secret-key", 24)

	_, err := service.ValidateToken("invalid.token.here")
	require.Error(t, err)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	req := require.New(t)
	token, err := NewJWTService("secret-a", 24).GenerateToken(uuid.New(), "a@b.edu")
	req.NoError(err)

	_, err = NewJWTService("secret-b", 24).ValidateToken(token)
	req.Error(err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	req := require.New(t)
	service := NewJWTService("test-secret-key", -1)

	token, err := service.GenerateToken(uuid.New(), "achen@ucdavis.edu")
	req.NoError(err)

	time.Sleep(100 * time.Millisecond)

	_, err = service.ValidateToken(token)
	req.Error(err)
}
