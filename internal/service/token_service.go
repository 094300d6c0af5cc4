package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"blue-star-api/internal/domain"
)

// TokenService emite y valida los JWT de sesion.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// Claims embebe userId y userType en el token firmado.
type Claims struct {
	UserID   int64           `json:"userId"`
	UserType domain.UserType `json:"userType"`
	jwt.RegisteredClaims
}

var (
	ErrJWTInvalid       = errors.New("jwt invalid")
	ErrJWTExpired       = errors.New("jwt expired")
	ErrJWTSecretMissing = errors.New("jwt secret not configured")
)

const defaultTokenTTL = time.Hour

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "blue-star-api",
	}
}

// Generate firma un token HS256 con vencimiento ttl.
func (s *TokenService) Generate(user domain.User) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrJWTSecretMissing
	}
	now := time.Now().UTC()
	claims := Claims{
		UserID:   user.ID,
		UserType: user.UserType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifica firma y vencimiento. Distingue token expirado de
// token invalido; sin secreto configurado falla antes de parsear.
func (s *TokenService) Parse(tokenString string) (Claims, error) {
	if len(s.secret) == 0 {
		return Claims{}, ErrJWTSecretMissing
	}
	if strings.TrimSpace(tokenString) == "" {
		return Claims{}, ErrJWTInvalid
	}

	var claims Claims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrJWTExpired
		}
		return Claims{}, ErrJWTInvalid
	}

	if claims.UserID <= 0 || claims.Issuer != s.issuer {
		return Claims{}, ErrJWTInvalid
	}
	if claims.Subject != strconv.FormatInt(claims.UserID, 10) {
		return Claims{}, ErrJWTInvalid
	}
	return claims, nil
}
