package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blue-star-api/internal/domain"
	"blue-star-api/internal/service"
)

const authClaimsKey = "auth_claims"

// RequireAuth valida el bearer token, rechaza tokens en la blacklist y
// guarda los claims en el contexto.
func RequireAuth(authServ *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, errMsg := bearerToken(c)
		if errMsg != "" {
			respondError(c, http.StatusUnauthorized, domain.CodeUnauthorized, errMsg)
			c.Abort()
			return
		}

		claims, err := authServ.VerifyAccess(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrJWTSecretMissing):
				respondError(c, http.StatusInternalServerError, domain.CodeInternalErr, "Internal server error")
			case errors.Is(err, service.ErrJWTExpired):
				respondError(c, http.StatusUnauthorized, domain.CodeTokenExpired, "Token expired")
			case errors.Is(err, service.ErrJWTInvalid):
				respondError(c, http.StatusUnauthorized, domain.CodeInvalidToken, "Invalid token")
			default:
				respondError(c, http.StatusInternalServerError, domain.CodeDatabaseError, "Database operation failed")
			}
			c.Abort()
			return
		}

		c.Set(authClaimsKey, claims)
		c.Next()
	}
}

// GetAuthClaims obtiene los claims del JWT desde el contexto.
func GetAuthClaims(c *gin.Context) (service.Claims, bool) {
	val, ok := c.Get(authClaimsKey)
	if !ok {
		return service.Claims{}, false
	}
	claims, ok := val.(service.Claims)
	return claims, ok
}
