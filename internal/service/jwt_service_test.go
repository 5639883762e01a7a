package service

import (
	"errors"
	"testing"
	"time"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	token, err := svc.GenerateAccessToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token.Token == "" || token.ExpiresIn != 3600 {
		t.Fatalf("unexpected token: %+v", token)
	}

	claims, err := svc.ParseAccessToken(token.Token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "admin" || claims.TokenType != "access" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTServiceRejectsGarbage(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	cases := []string{"", "   ", "not.a.jwt"}
	for _, token := range cases {
		if _, err := svc.ParseAccessToken(token); !errors.Is(err, ErrJWTInvalid) {
			t.Fatalf("token %q: expected ErrJWTInvalid, got %v", token, err)
		}
	}
}

func TestJWTServiceRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour)
	verifier := NewJWTService("secret-b", time.Hour)

	token, err := issuer.GenerateAccessToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := verifier.ParseAccessToken(token.Token); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid, got %v", err)
	}
}

func TestJWTServiceExpiredToken(t *testing.T) {
	svc := NewJWTService("secret", time.Nanosecond)

	token, err := svc.GenerateAccessToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := svc.ParseAccessToken(token.Token); !errors.Is(err, ErrJWTExpired) {
		t.Fatalf("expected ErrJWTExpired, got %v", err)
	}
}

func TestJWTServiceWithoutSecret(t *testing.T) {
	svc := NewJWTService("", time.Hour)
	if _, err := svc.GenerateAccessToken(); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid without secret, got %v", err)
	}
}
