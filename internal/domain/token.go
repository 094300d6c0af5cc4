package domain

import "time"

// BlacklistedToken es un JWT invalidado por logout. La tabla es
// append-only y el token es unico.
type BlacklistedToken struct {
	ID        int64     `json:"id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
}
