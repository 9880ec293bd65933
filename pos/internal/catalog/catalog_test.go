package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/farmasystem/pos/internal/backend"
	inErrors "github.com/farmasystem/pos/internal/errors"
	"github.com/farmasystem/pos/inventory/pkg/status"
)

func seedProducts() []backend.Product {
	nearExpiry := time.Now().Add(30 * 24 * time.Hour).Format("2006-01-02")
	farExpiry := time.Now().Add(365 * 24 * time.Hour).Format("2006-01-02")
	return []backend.Product{
		{
			ID:        1,
			Name:      "Paracetamol 500mg",
			Sku:       "PARA500",
			SalePrice: decimal.RequireFromString("5.99"),
			MinStock:  20,
			Batches: []backend.Batch{
				{ID: 11, BatchCode: "L-001", ExpirationDate: farExpiry, Stock: 40},
				{ID: 12, BatchCode: "L-002", ExpirationDate: nearExpiry, Stock: 15},
			},
		},
		{
			ID:        2,
			Name:      "Ibuprofeno 400mg",
			Sku:       "IBU400",
			SalePrice: decimal.RequireFromString("8.50"),
			MinStock:  10,
			Batches: []backend.Batch{
				{ID: 21, BatchCode: "L-003", ExpirationDate: "2020-01-01", Stock: 5},
			},
		},
		{
			ID:        3,
			Name:      "Amoxicilina 500mg",
			Sku:       "AMOX500",
			SalePrice: decimal.RequireFromString("12.00"),
			MinStock:  5,
		},
	}
}

func TestFindProducts(t *testing.T) {
	c := context.Background()
	svc, cache, redisContainer, server, backendHits := setup(t)(c, seedProducts())
	defer teardown(t)(cache, redisContainer, server)

	products, err := svc.FindProducts(c, "")
	assert.NoError(t, err)
	assert.Len(t, products, 3)
	assert.EqualValues(t, 1, backendHits.Load())

	paracetamol := products[0]
	assert.EqualValues(t, 55, paracetamol.TotalStock)
	assert.Equal(t, status.StockOk, paracetamol.StockStatus)
	assert.NotNil(t, paracetamol.NearestBatch)
	assert.EqualValues(t, 12, paracetamol.NearestBatch.ID)
	assert.Equal(t, status.ExpiryNear, paracetamol.NearestBatch.ExpiryStatus)

	ibuprofen := products[1]
	assert.EqualValues(t, 5, ibuprofen.TotalStock)
	assert.Equal(t, status.StockLow, ibuprofen.StockStatus)
	assert.Equal(t, status.ExpiryExpired, ibuprofen.Batches[0].ExpiryStatus)

	amoxicilin := products[2]
	assert.EqualValues(t, 0, amoxicilin.TotalStock)
	assert.Equal(t, status.StockOut, amoxicilin.StockStatus)
	assert.Nil(t, amoxicilin.NearestBatch)
}

func TestFindProductsServedFromCache(t *testing.T) {
	c := context.Background()
	svc, cache, redisContainer, server, backendHits := setup(t)(c, seedProducts())
	defer teardown(t)(cache, redisContainer, server)

	_, err := svc.FindProducts(c, "")
	assert.NoError(t, err)
	_, err = svc.FindProducts(c, "")
	assert.NoError(t, err)

	assert.EqualValues(t, 1, backendHits.Load())
}

func TestFindProductsQueryFilter(t *testing.T) {
	c := context.Background()
	svc, cache, redisContainer, server, _ := setup(t)(c, seedProducts())
	defer teardown(t)(cache, redisContainer, server)

	tests := []struct {
		name      string
		query     string
		wantedIds []int64
	}{
		{name: "by name case insensitive", query: "paraceta", wantedIds: []int64{1}},
		{name: "by sku", query: "ibu", wantedIds: []int64{2}},
		{name: "no match", query: "aspirina", wantedIds: []int64{}},
		{name: "shared substring", query: "500", wantedIds: []int64{1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := svc.FindProducts(c, tt.query)
			assert.NoError(t, err)

			ids := make([]int64, 0, len(products))
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			assert.EqualValues(t, tt.wantedIds, ids)
		})
	}
}

func TestFindProductById(t *testing.T) {
	c := context.Background()
	svc, cache, redisContainer, server, _ := setup(t)(c, seedProducts())
	defer teardown(t)(cache, redisContainer, server)

	product, err := svc.FindProductById(c, 2)
	assert.NoError(t, err)
	assert.Equal(t, "Ibuprofeno 400mg", product.Name)

	_, err = svc.FindProductById(c, 99)
	assert.ErrorIs(t, err, inErrors.ErrProductNotFound)
}

func TestInvalidateRefetchesFromBackend(t *testing.T) {
	c := context.Background()
	svc, cache, redisContainer, server, backendHits := setup(t)(c, seedProducts())
	defer teardown(t)(cache, redisContainer, server)

	_, err := svc.FindProducts(c, "")
	assert.NoError(t, err)
	assert.EqualValues(t, 1, backendHits.Load())

	assert.NoError(t, svc.Invalidate(c))

	_, err = svc.FindProducts(c, "")
	assert.NoError(t, err)
	assert.EqualValues(t, 2, backendHits.Load())
}
