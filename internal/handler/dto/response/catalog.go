package response

import (
	"storefront/internal/usecase/queries"
)

type ProductListResponse struct {
	Items      []*queries.ProductListItem `json:"items"`
	NextCursor string                     `json:"next_cursor,omitempty"`
}

func FromProductListResult(r *queries.ProductListResult) ProductListResponse {
	return ProductListResponse{
		Items:      r.Items,
		NextCursor: r.NextCursor,
	}
}
