package repository

import (
	"context"

	"storefront/internal/domain/catalog"
	"storefront/internal/infra"

	"github.com/google/uuid"
)

type ProductRepository struct {
	db infra.DBTX
}

func NewProductRepository(db infra.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int32, error) {
	var count int32
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM products WHERE account_id = $1`, accountID).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count products", err)
	}
	return count, nil
}

const selectProductPageSQL = `
SELECT id, account_id, name, slug, description, sku, price_cents, currency,
       is_active, primary_image_url, created_at, updated_at
FROM products
WHERE account_id = $1
ORDER BY created_at, id
LIMIT $2 OFFSET $3`

// ListPage returns products under a stable (created_at, id) ordering so that
// successive offset windows never reorder between invocations.
func (r *ProductRepository) ListPage(ctx context.Context, accountID uuid.UUID, offset, limit int32) ([]catalog.Product, error) {
	rows, err := r.db.Query(ctx, selectProductPageSQL, accountID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product page", err)
	}
	defer rows.Close()

	var items []catalog.Product
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(
			&p.ID, &p.AccountID, &p.Name, &p.Slug, &p.Description, &p.SKU,
			&p.PriceCents, &p.Currency, &p.IsActive, &p.PrimaryImageURL,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}
	return items, nil
}

const insertProductSQL = `
INSERT INTO products (id, account_id, name, slug, description, sku, price_cents,
                      currency, is_active, primary_image_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

func (r *ProductRepository) Insert(ctx context.Context, p *catalog.Product) error {
	_, err := r.db.Exec(ctx, insertProductSQL,
		p.ID, p.AccountID, p.Name, p.Slug, p.Description, p.SKU,
		p.PriceCents, p.Currency, p.IsActive, p.PrimaryImageURL,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return infra.WrapRepoErr("product slug or sku already taken", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to insert product", err)
	}
	return nil
}

func (r *ProductRepository) SetPrimaryImageURL(ctx context.Context, productID uuid.UUID, url string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE products SET primary_image_url = $2, updated_at = now() WHERE id = $1`,
		productID, url,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set primary image url", err)
	}
	return nil
}

// ListSlugs returns every product slug the account currently owns; the clone
// worker seeds its slug registry from this.
func (r *ProductRepository) ListSlugs(ctx context.Context, accountID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT slug FROM products WHERE account_id = $1`, accountID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product slugs", err)
	}
	defer rows.Close()

	var slugs []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slug row", err)
		}
		slugs = append(slugs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slug rows", err)
	}
	return slugs, nil
}

func (r *ProductRepository) ListImages(ctx context.Context, productID uuid.UUID) ([]catalog.ProductImage, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, url, store_key, position, is_primary, created_at
		 FROM product_images WHERE product_id = $1 ORDER BY position, id`,
		productID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list product images", err)
	}
	defer rows.Close()

	var images []catalog.ProductImage
	for rows.Next() {
		var img catalog.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.URL, &img.StoreKey, &img.Position, &img.IsPrimary, &img.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan image row", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate image rows", err)
	}
	return images, nil
}

func (r *ProductRepository) InsertImage(ctx context.Context, img *catalog.ProductImage) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO product_images (id, product_id, url, store_key, position, is_primary, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		img.ID, img.ProductID, img.URL, img.StoreKey, img.Position, img.IsPrimary, img.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert product image", err)
	}
	return nil
}

func (r *ProductRepository) ListTiers(ctx context.Context, productID uuid.UUID) ([]catalog.PriceTier, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, product_id, min_quantity, unit_price_cents, created_at
		 FROM price_tiers WHERE product_id = $1 ORDER BY min_quantity`,
		productID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list price tiers", err)
	}
	defer rows.Close()

	var tiers []catalog.PriceTier
	for rows.Next() {
		var t catalog.PriceTier
		if err := rows.Scan(&t.ID, &t.ProductID, &t.MinQuantity, &t.UnitPriceCents, &t.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan tier row", err)
		}
		tiers = append(tiers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate tier rows", err)
	}
	return tiers, nil
}

func (r *ProductRepository) InsertTier(ctx context.Context, t *catalog.PriceTier) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO price_tiers (id, product_id, min_quantity, unit_price_cents, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		t.ID, t.ProductID, t.MinQuantity, t.UnitPriceCents, t.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert price tier", err)
	}
	return nil
}
