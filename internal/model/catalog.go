package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups products on the menu.
type Category struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
}

// Product represents an item in the catalogue. The price here is the current
// catalogue price; orders snapshot it at creation time and never read it back.
type Product struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	Name       string          `json:"name" db:"name"`
	Price      decimal.Decimal `json:"price" db:"price"`
	Active     bool            `json:"active" db:"active"`
	CategoryID uuid.UUID       `json:"categoryId" db:"category_id"`
	CreatedAt  time.Time       `json:"createdAt" db:"created_at"`
}

// ProductListing is a product joined with its category name, as shown on the menu.
type ProductListing struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	CategoryName string          `json:"categoryName"`
}
