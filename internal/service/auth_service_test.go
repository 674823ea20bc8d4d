package service

import (
	"testing"

	"github.com/jei-ifri/showdown/internal/bracket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	auth := NewAuthService(string(hash), "test-secret")

	_, err = auth.Login("wrong-password")
	assert.ErrorIs(t, err, bracket.ErrUnauthorized)

	token, err := auth.Login("correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
