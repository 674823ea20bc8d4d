package service

import (
	"github.com/jei-ifri/showdown/internal/bracket"
	"github.com/jei-ifri/showdown/internal/middleware"
	"golang.org/x/crypto/bcrypt"
)

// AuthService turns the admin password into a short-lived signed token.
// The rest of the system only ever sees the verified decision, never the
// credential itself.
type AuthService struct {
	passwordHash string
	jwtSecret    string
}

func NewAuthService(passwordHash, jwtSecret string) *AuthService {
	return &AuthService{passwordHash: passwordHash, jwtSecret: jwtSecret}
}

func (s *AuthService) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", bracket.ErrUnauthorized
	}
	return middleware.MintAdminToken(s.jwtSecret)
}
