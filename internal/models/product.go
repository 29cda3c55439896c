package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductSummary is the product reference embedded in sale reads.
type ProductSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,min=2,max=200"`
	Category string          `json:"category" validate:"required,max=100"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name     *string          `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Category *string          `json:"category,omitempty" validate:"omitempty,max=100"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Stock    *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	// Version, when set, must match the stored version or the update is rejected.
	Version *int64 `json:"version,omitempty"`
}

type UpdateStockRequest struct {
	Stock *int `json:"stock" validate:"required,gte=0"`
}

type ProductFilter struct {
	Search            string `json:"search,omitempty"`
	Category          string `json:"category,omitempty"`
	LowStockOnly      bool   `json:"low_stock,omitempty"`
	LowStockThreshold int    `json:"-"`
}

// IsZero reports whether the filter selects the whole catalog.
func (f ProductFilter) IsZero() bool {
	return f.Search == "" && f.Category == "" && !f.LowStockOnly
}
