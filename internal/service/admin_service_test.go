package service

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestAdminServiceLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	jwtSvc := NewJWTService("secret", time.Hour)
	svc := NewAdminService(string(hash), jwtSvc)

	t.Run("valid password", func(t *testing.T) {
		token, err := svc.Login("hunter2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := jwtSvc.ParseAccessToken(token.Token); err != nil {
			t.Fatalf("issued token does not parse: %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if _, err := svc.Login("wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("empty password", func(t *testing.T) {
		if _, err := svc.Login("  "); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestAdminServiceWithoutHash(t *testing.T) {
	svc := NewAdminService("", NewJWTService("secret", time.Hour))
	if _, err := svc.Login("anything"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials without configured hash, got %v", err)
	}
}
