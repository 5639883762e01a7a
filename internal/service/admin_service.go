package service

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// AdminService authenticates the single administrative user against a bcrypt
// hash from configuration and hands out access tokens.
type AdminService struct {
	passwordHash string
	jwt          *JWTService
}

var ErrInvalidCredentials = errors.New("invalid credentials")

func NewAdminService(passwordHash string, jwt *JWTService) *AdminService {
	return &AdminService{passwordHash: strings.TrimSpace(passwordHash), jwt: jwt}
}

func (s *AdminService) Login(password string) (AccessToken, error) {
	password = strings.TrimSpace(password)
	if s.passwordHash == "" || password == "" {
		return AccessToken{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return AccessToken{}, ErrInvalidCredentials
	}
	return s.jwt.GenerateAccessToken()
}
