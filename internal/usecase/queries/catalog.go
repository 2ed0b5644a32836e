package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ProductListItem struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	PriceCents      int64     `json:"price_cents"`
	Currency        string    `json:"currency"`
	PrimaryImageURL *string   `json:"primary_image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type ProductListFilter struct {
	Search        string
	MinPriceCents *int64
	MaxPriceCents *int64
	Limit         int
	AfterCursor   string
}

type ProductListResult struct {
	Items      []*ProductListItem `json:"items"`
	NextCursor string             `json:"next_cursor,omitempty"`
}

type CatalogQueries interface {
	// ListProducts serves the public browse page for one seller account,
	// identified by its slug. Only active products are visible.
	ListProducts(ctx context.Context, accountSlug string, filter ProductListFilter) (*ProductListResult, error)
}
