package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blue-star-api/internal/domain"
	"blue-star-api/internal/service"
	"blue-star-api/internal/validation"
)

// AuthHandler mantiene dependencias para los endpoints de autenticacion.
type AuthHandler struct {
	logger   *zap.Logger
	authServ *service.AuthService
	dev      bool
}

// NewAuthHandler crea una instancia de AuthHandler con las dependencias
// necesarias.
func NewAuthHandler(logger *zap.Logger, authServ *service.AuthService, dev bool) *AuthHandler {
	return &AuthHandler{
		logger:   logger,
		authServ: authServ,
		dev:      dev,
	}
}

// Register maneja POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var reg domain.Registration
	if err := c.ShouldBindJSON(&reg); err != nil {
		h.logger.Warn("invalid register request", zap.Error(err))
		respondError(c, http.StatusBadRequest, domain.CodeValidationErr, "Invalid or missing body")
		return
	}

	if err := h.authServ.Register(c.Request.Context(), reg); err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			respondError(c, http.StatusBadRequest, verr.Code, verr.Message)
		case errors.Is(err, service.ErrUserExists):
			respondError(c, http.StatusBadRequest, domain.CodeUserExists, "User already exists")
		case errors.Is(err, service.ErrEmailConflict):
			// La constraint unica gano la carrera contra el pre-chequeo.
			respondError(c, http.StatusConflict, domain.CodeUserExists, "Email already exists")
		default:
			h.logger.Error("register failed", zap.Error(err))
			respondInternal(c, h.dev, domain.CodeInternalErr, "Internal server error", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "message": domain.StatusRegisterSuccess})
}

// Login maneja POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domain.CodeMissingFields, "Missing fields")
		return
	}

	token, err := h.authServ.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			respondError(c, http.StatusBadRequest, domain.CodeMissingFields, "Missing fields")
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, domain.CodeInvalidCredentials, "Invalid credentials")
		case errors.Is(err, service.ErrJWTSecretMissing):
			h.logger.Error("jwt secret not configured")
			respondError(c, http.StatusInternalServerError, domain.CodeInternalErr, "Internal server error")
		default:
			h.logger.Error("login failed", zap.Error(err))
			respondInternal(c, h.dev, domain.CodeInternalErr, "Internal server error", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": domain.StatusLoginSuccess, "token": token})
}

// Logout maneja POST /auth/logout: verifica el bearer token y lo
// agrega a la blacklist. Repetir el logout devuelve 200 igual.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, errMsg := bearerToken(c)
	if errMsg != "" {
		respondError(c, http.StatusUnauthorized, domain.CodeUnauthorized, errMsg)
		return
	}

	if err := h.authServ.Logout(c.Request.Context(), token); err != nil {
		switch {
		case errors.Is(err, service.ErrJWTSecretMissing):
			h.logger.Error("jwt secret not configured")
			respondError(c, http.StatusInternalServerError, domain.CodeInternalErr, "Internal server error")
		case errors.Is(err, service.ErrJWTExpired):
			respondError(c, http.StatusUnauthorized, domain.CodeTokenExpired, "Token expired")
		case errors.Is(err, service.ErrJWTInvalid):
			respondError(c, http.StatusUnauthorized, domain.CodeInvalidToken, "Invalid token")
		default:
			h.logger.Error("logout failed", zap.Error(err))
			respondInternal(c, h.dev, domain.CodeDatabaseError, "Database operation failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": domain.StatusLogoutSuccess})
}

// Me maneja GET /user/me.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, domain.CodeUnauthorized, "Unauthorized action")
		return
	}

	user, err := h.authServ.GetUser(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, domain.CodeUserNonexistent, "User not found")
			return
		}
		h.logger.Error("fetch user failed", zap.Error(err))
		respondInternal(c, h.dev, domain.CodeInternalErr, "Internal server error", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// bearerToken extrae el token del header Authorization distinguiendo
// header ausente de header malformado.
func bearerToken(c *gin.Context) (string, string) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return "", "Access denied, no token provided"
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", "Invalid authorization header"
	}
	return parts[1], ""
}
