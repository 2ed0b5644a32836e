//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"storefront/internal/domain/catalog"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	Name            string
	Slug            string
	SKU             string
	PriceCents      int64
	Currency        string
	IsActive        bool
	PrimaryImageURL *string
	CreatedAt       time.Time
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:         uuid.New(),
		AccountID:  uuid.New(),
		Name:       "Walnut Chair",
		Slug:       "walnut-chair",
		SKU:        "WC-001",
		PriceCents: 12900,
		Currency:   "USD",
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) BuildDomain() catalog.Product {
	return catalog.Product{
		ID:              b.ID,
		AccountID:       b.AccountID,
		Name:            b.Name,
		Slug:            b.Slug,
		SKU:             b.SKU,
		PriceCents:      b.PriceCents,
		Currency:        b.Currency,
		IsActive:        b.IsActive,
		PrimaryImageURL: b.PrimaryImageURL,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}

// BuildPage produces n products owned by the same account, each with a unique
// slug and SKU.
func (b *ProductBuilder) BuildPage(n int) []catalog.Product {
	page := make([]catalog.Product, 0, n)
	for i := 0; i < n; i++ {
		p := b.BuildDomain()
		p.ID = uuid.New()
		p.Slug = fmt.Sprintf("%s-%d", b.Slug, i)
		p.SKU = fmt.Sprintf("%s-%d", b.SKU, i)
		page = append(page, p)
	}
	return page
}

func (b *ProductBuilder) BuildImage(productID uuid.UUID, position int32, isPrimary bool) catalog.ProductImage {
	return catalog.ProductImage{
		ID:        uuid.New(),
		ProductID: productID,
		URL:       fmt.Sprintf("https://img.example.com/%s/%d.jpg", productID, position),
		StoreKey:  fmt.Sprintf("products/%s/%d.jpg", productID, position),
		Position:  position,
		IsPrimary: isPrimary,
		CreatedAt: b.CreatedAt,
	}
}

func (b *ProductBuilder) BuildTier(productID uuid.UUID, minQty int32, unitPriceCents int64) catalog.PriceTier {
	return catalog.PriceTier{
		ID:             uuid.New(),
		ProductID:      productID,
		MinQuantity:    minQty,
		UnitPriceCents: unitPriceCents,
		CreatedAt:      b.CreatedAt,
	}
}
