package readstore

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/infra"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/queries"
)

type ProductReadStore struct {
	db infra.DBTX
}

func NewProductReadStore(db infra.DBTX) *ProductReadStore {
	return &ProductReadStore{db: db}
}

var _ queries.CatalogQueries = (*ProductReadStore)(nil)

func (r *ProductReadStore) ListProducts(ctx context.Context, accountSlug string, filter queries.ProductListFilter) (*queries.ProductListResult, error) {
	limit := queries.ValidateLimit(filter.Limit)

	var (
		conds = []string{"a.slug = $1", "p.is_active"}
		args  = []any{accountSlug}
	)
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("p.name ILIKE $%d", len(args)))
	}
	if filter.MinPriceCents != nil {
		args = append(args, *filter.MinPriceCents)
		conds = append(conds, fmt.Sprintf("p.price_cents >= $%d", len(args)))
	}
	if filter.MaxPriceCents != nil {
		args = append(args, *filter.MaxPriceCents)
		conds = append(conds, fmt.Sprintf("p.price_cents <= $%d", len(args)))
	}
	if filter.AfterCursor != "" {
		afterTime, afterID, err := queries.DecodeAfterCursor(filter.AfterCursor)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid pagination cursor", err, infra.KindNotFound)
		}
		args = append(args, pgconv.TimeToPgtype(afterTime), afterID)
		conds = append(conds, fmt.Sprintf("(p.created_at, p.id) > ($%d, $%d)", len(args)-1, len(args)))
	}

	// Fetch one extra row to detect whether another page exists.
	args = append(args, limit+1)
	sql := fmt.Sprintf(`
		SELECT p.id, p.name, p.slug, p.price_cents, p.currency, p.primary_image_url, p.created_at
		FROM products p
		JOIN accounts a ON a.id = p.account_id
		WHERE %s
		ORDER BY p.created_at, p.id
		LIMIT $%d`,
		strings.Join(conds, " AND "), len(args),
	)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list catalog products", err)
	}
	defer rows.Close()

	items := make([]*queries.ProductListItem, 0, limit)
	for rows.Next() {
		var item queries.ProductListItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Slug, &item.PriceCents, &item.Currency, &item.PrimaryImageURL, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan catalog row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate catalog rows", err)
	}

	result := &queries.ProductListResult{Items: items}
	if len(items) > limit {
		result.Items = items[:limit]
		last := result.Items[limit-1]
		result.NextCursor = queries.EncodeAfterCursor(last.CreatedAt, last.ID)
	}
	return result, nil
}
