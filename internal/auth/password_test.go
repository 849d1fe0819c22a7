package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	req := require.New(t)

	hash, err := HashPassword("mySecurePassword123")
	req.NoError(err)
	req.NotEmpty(hash)
	req.NotEqual("mySecurePassword123", hash)
}

func TestCheckPassword(t *testing.T) {
	req := require.New(t)

	hash, err := HashPassword("mySecurePassword123")
	req.NoError(err)

	req.NoError(CheckPassword(hash, "mySecurePassword123"))
	req.Error(CheckPassword(hash, "wrongPassword"))
}
