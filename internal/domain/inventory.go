package domain

import "time"

// Category agrupa items de inventario. El nombre es unico.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"categoryName"`
	CreatedAt time.Time `json:"createdAt"`
}

// Item es una pieza de inventario asociada a una categoria.
type Item struct {
	ID         int64     `json:"id"`
	Name       string    `json:"itemName"`
	CategoryID int64     `json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
}
