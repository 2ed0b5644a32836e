// Package catalog holds the product records a seller account owns. These are
// persistence-shaped records rather than rich aggregates: the clone pipeline
// copies their business fields wholesale and regenerates identity.
package catalog

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	Name            string
	Slug            string
	Description     *string
	SKU             string
	PriceCents      int64
	Currency        string
	IsActive        bool
	PrimaryImageURL *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProductImage points at stored binary bytes. At most one image per product
// carries IsPrimary.
type ProductImage struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	URL       string
	StoreKey  string
	Position  int32
	IsPrimary bool
	CreatedAt time.Time
}

// PriceTier is a quantity-break price attached to a product.
type PriceTier struct {
	ID             uuid.UUID
	ProductID      uuid.UUID
	MinQuantity    int32
	UnitPriceCents int64
	CreatedAt      time.Time
}
