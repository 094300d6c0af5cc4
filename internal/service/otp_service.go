package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"blue-star-api/internal/domain"
	"blue-star-api/internal/email"
	"blue-star-api/internal/repository"
)

// OTPService genera, envia y consume codigos de verificacion de email.
type OTPService struct {
	logger  *zap.Logger
	users   repository.UserRepository
	otps    repository.OTPRepository
	sender  email.Sender
	limiter OTPRateLimiter
	now     func() time.Time
}

var (
	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmailTaken       = errors.New("email address taken")
	ErrRateLimited      = errors.New("rate limited")
	ErrEmailSendFailure = errors.New("email send failed")
	ErrOTPNotFound      = errors.New("otp not found")
	ErrOTPExpired       = errors.New("otp expired")
	ErrOTPInvalid       = errors.New("otp invalid")
)

const (
	otpTTL    = 10 * time.Minute
	otpDigits = 6
)

func NewOTPService(logger *zap.Logger, users repository.UserRepository, otps repository.OTPRepository, sender email.Sender, limiter OTPRateLimiter) *OTPService {
	if limiter == nil {
		limiter = NewOTPRateLimiter(otpTTL, 3)
	}
	return &OTPService{
		logger:  logger,
		users:   users,
		otps:    otps,
		sender:  sender,
		limiter: limiter,
		now:     time.Now,
	}
}

// Request genera un codigo de 6 digitos para un email aun no
// registrado, lo guarda con vencimiento a 10 minutos y lo envia.
func (s *OTPService) Request(ctx context.Context, emailAddr string) error {
	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" {
		return ErrInvalidEmail
	}

	if s.limiter != nil && !s.limiter.Allow(emailAddr) {
		return ErrRateLimited
	}

	_, err := s.users.GetByEmail(ctx, emailAddr)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("lookup user: %w", err)
	}

	code, err := generateOTPCode()
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	otp := domain.OTP{
		Email:     emailAddr,
		Code:      code,
		ExpiresAt: s.now().UTC().Add(otpTTL),
	}
	if err := s.otps.Upsert(ctx, otp); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	// Un envio fallido no revierte el codigo guardado: el reintento
	// del cliente reutiliza o reemplaza la fila.
	if s.sender == nil {
		return ErrEmailSendFailure
	}
	if err := s.sender.SendOTP(ctx, emailAddr, code, otp.ExpiresAt); err != nil {
		if s.logger != nil {
			s.logger.Warn("send otp failed", zap.Error(err), zap.String("email", emailAddr))
		}
		return ErrEmailSendFailure
	}
	return nil
}

// Verify compara el codigo, rechaza vencidos y consume la fila en un
// solo uso.
func (s *OTPService) Verify(ctx context.Context, emailAddr, code string) error {
	emailAddr = normalizeEmail(emailAddr)
	code = strings.TrimSpace(code)
	if emailAddr == "" {
		return ErrInvalidEmail
	}
	if !isOTPCodeShape(code) {
		return ErrOTPInvalid
	}

	stored, err := s.otps.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrOTPNotFound
		}
		return fmt.Errorf("lookup otp: %w", err)
	}

	if stored.Expired(s.now().UTC()) {
		return ErrOTPExpired
	}
	if subtle.ConstantTimeCompare([]byte(stored.Code), []byte(code)) != 1 {
		return ErrOTPInvalid
	}

	if err := s.otps.Delete(ctx, emailAddr); err != nil {
		return fmt.Errorf("consume otp: %w", err)
	}
	return nil
}

func generateOTPCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}

func isOTPCodeShape(code string) bool {
	if len(code) != otpDigits {
		return false
	}
	for _, r := range code {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
