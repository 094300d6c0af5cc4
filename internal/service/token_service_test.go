package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blue-star-api/internal/domain"
)

func TestTokenServiceGenerateAndParse(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Generate(domain.User{ID: 7, UserType: domain.UserTypeVolunteer})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 7 {
		t.Fatalf("userId = %d, want 7", claims.UserID)
	}
	if claims.UserType != domain.UserTypeVolunteer {
		t.Fatalf("userType = %s, want VOLUNTEER", claims.UserType)
	}
}

func TestTokenServiceRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).Generate(domain.User{ID: 1, UserType: domain.UserTypeVolunteer})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := NewTokenService("secret-b", time.Hour).Parse(token); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("got %v, want ErrJWTInvalid", err)
	}
}

func TestTokenServiceExpired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	now := time.Now().UTC().Add(-2 * time.Hour)
	claims := Claims{
		UserID:   3,
		UserType: domain.UserTypeVolunteer,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "blue-star-api",
			Subject:   "3",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Parse(token); !errors.Is(err, ErrJWTExpired) {
		t.Fatalf("got %v, want ErrJWTExpired", err)
	}
}

func TestTokenServiceMissingSecret(t *testing.T) {
	svc := NewTokenService("", time.Hour)

	if _, err := svc.Generate(domain.User{ID: 1}); !errors.Is(err, ErrJWTSecretMissing) {
		t.Fatalf("generate: got %v, want ErrJWTSecretMissing", err)
	}
	if _, err := svc.Parse("whatever"); !errors.Is(err, ErrJWTSecretMissing) {
		t.Fatalf("parse: got %v, want ErrJWTSecretMissing", err)
	}
}

func TestTokenServiceRejectsNoneAlgorithm(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "blue-star-api",
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Parse(token); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("got %v, want ErrJWTInvalid", err)
	}
}

func TestTokenServiceRejectsForeignIssuer(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	claims := Claims{
		UserID: 5,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			Subject:   "5",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Parse(token); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("got %v, want ErrJWTInvalid", err)
	}
}

func TestTokenServiceRejectsGarbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	for _, tok := range []string{"", "   ", "not.a.jwt"} {
		if _, err := svc.Parse(tok); !errors.Is(err, ErrJWTInvalid) {
			t.Errorf("Parse(%q) = %v, want ErrJWTInvalid", tok, err)
		}
	}
}
