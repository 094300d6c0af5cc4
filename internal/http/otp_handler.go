package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blue-star-api/internal/domain"
	"blue-star-api/internal/service"
)

// OTPHandler mantiene dependencias para los endpoints de OTP.
type OTPHandler struct {
	logger  *zap.Logger
	otpServ *service.OTPService
	dev     bool
}

func NewOTPHandler(logger *zap.Logger, otpServ *service.OTPService, dev bool) *OTPHandler {
	return &OTPHandler{
		logger:  logger,
		otpServ: otpServ,
		dev:     dev,
	}
}

// CheckEmail maneja POST /check-email: rechaza emails ya registrados y
// envia un OTP al resto.
func (h *OTPHandler) CheckEmail(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		respondError(c, http.StatusBadRequest, domain.CodeMissingFields, "Email is required")
		return
	}

	if err := h.otpServ.Request(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, http.StatusBadRequest, domain.CodeMissingFields, "Email is required")
		case errors.Is(err, service.ErrEmailTaken):
			respondError(c, http.StatusBadRequest, domain.CodeUserExists, "Email address taken")
		case errors.Is(err, service.ErrRateLimited):
			respondError(c, http.StatusTooManyRequests, domain.CodeRateLimited, "Too many requests")
		case errors.Is(err, service.ErrEmailSendFailure):
			respondError(c, http.StatusInternalServerError, domain.CodeInternalErr, "Failed to send OTP email")
		default:
			h.logger.Error("request otp failed", zap.Error(err))
			respondInternal(c, h.dev, domain.CodeInternalErr, "Internal server error", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"success": true,
			"message": "OTP sent successfully to your email.",
			"exists":  false,
			"email":   req.Email,
		},
	})
}

// VerifyOTP maneja POST /verify-otp.
func (h *OTPHandler) VerifyOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.OTP == "" {
		respondError(c, http.StatusBadRequest, domain.CodeMissingFields, "Email and OTP are required")
		return
	}

	if err := h.otpServ.Verify(c.Request.Context(), req.Email, req.OTP); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, http.StatusBadRequest, domain.CodeMissingFields, "Email and OTP are required")
		case errors.Is(err, service.ErrOTPNotFound):
			respondError(c, http.StatusBadRequest, domain.CodeValidationErr, "OTP not found")
		case errors.Is(err, service.ErrOTPExpired):
			respondError(c, http.StatusBadRequest, domain.CodeValidationErr, "OTP expired")
		case errors.Is(err, service.ErrOTPInvalid):
			respondError(c, http.StatusBadRequest, domain.CodeValidationErr, "Invalid OTP")
		default:
			h.logger.Error("verify otp failed", zap.Error(err))
			respondInternal(c, h.dev, domain.CodeInternalErr, "Internal server error", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP verified successfully"})
}
