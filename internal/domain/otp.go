package domain

import "time"

// OTP es un codigo de verificacion de un solo uso, con a lo sumo una
// fila viva por email.
type OTP struct {
	Email     string    `json:"email"`
	Code      string    `json:"otp"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired indica si el codigo ya vencio en el instante dado.
func (o OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
