package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blue-star-api/internal/domain"
)

// OTPRepository guarda codigos de verificacion, a lo sumo uno por email.
type OTPRepository interface {
	Upsert(ctx context.Context, otp domain.OTP) error
	GetByEmail(ctx context.Context, email string) (domain.OTP, error)
	Delete(ctx context.Context, email string) error
}

// PgOTPRepository implementa OTPRepository usando pgxpool.
type PgOTPRepository struct {
	pool *pgxpool.Pool
}

func NewPgOTPRepository(pool *pgxpool.Pool) *PgOTPRepository {
	return &PgOTPRepository{pool: pool}
}

func (r *PgOTPRepository) Upsert(ctx context.Context, otp domain.OTP) error {
	// Reemplaza cualquier codigo vivo anterior para el mismo email.
	const query = `
		INSERT INTO otps (email, otp, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET otp = EXCLUDED.otp, expires_at = EXCLUDED.expires_at
	`
	_, err := r.pool.Exec(ctx, query, otp.Email, otp.Code, otp.ExpiresAt)
	return err
}

func (r *PgOTPRepository) GetByEmail(ctx context.Context, email string) (domain.OTP, error) {
	const query = `
		SELECT email, otp, expires_at
		FROM otps
		WHERE email = $1
	`
	var otp domain.OTP
	err := r.pool.QueryRow(ctx, query, email).Scan(&otp.Email, &otp.Code, &otp.ExpiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.OTP{}, err
	}
	return otp, err
}

func (r *PgOTPRepository) Delete(ctx context.Context, email string) error {
	const query = `DELETE FROM otps WHERE email = $1`
	_, err := r.pool.Exec(ctx, query, email)
	return err
}
