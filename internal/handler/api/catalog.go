package api

import (
	"net/http"
	"strconv"

	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/infra"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalogQueries: catalogQueries}
}

// @Summary Browse storefront products
// @Description List a seller's active products with optional search and price filters, keyset paginated
// @Tags catalog
// @Produce json
// @Param accountSlug path string true "Seller account slug"
// @Param search query string false "Name substring match"
// @Param min_price query int false "Minimum price in cents"
// @Param max_price query int false "Maximum price in cents"
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.ProductListResponse
// @Failure 400 {object} map[string]string
// @Router /catalog/{accountSlug}/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter, err := buildProductFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	result, err := h.catalogQueries.ListProducts(c.Request.Context(), c.Param("accountSlug"), filter)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pagination cursor",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductListResult(result))
}

func buildProductFilter(c *gin.Context) (queries.ProductListFilter, error) {
	filter := queries.ProductListFilter{
		Search:      c.Query("search"),
		AfterCursor: c.Query("after"),
	}

	minPrice, err := queryInt64(c, "min_price")
	if err != nil {
		return filter, err
	}
	filter.MinPriceCents = minPrice

	maxPrice, err := queryInt64(c, "max_price")
	if err != nil {
		return filter, err
	}
	filter.MaxPriceCents = maxPrice

	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return filter, errInvalidQuery("limit")
		}
		filter.Limit = parsed
	}

	return filter, nil
}

func queryInt64(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed < 0 {
		return nil, errInvalidQuery(name)
	}
	return &parsed, nil
}

type queryError string

func (e queryError) Error() string { return string(e) }

func errInvalidQuery(name string) error {
	return queryError("invalid query parameter: " + name)
}
