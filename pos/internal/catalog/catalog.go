package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/farmasystem/pos/internal/backend"
	inErrors "github.com/farmasystem/pos/internal/errors"
	"github.com/farmasystem/pos/internal/log"
	"github.com/farmasystem/pos/internal/otel"
	"github.com/farmasystem/pos/inventory/pkg/status"
	"github.com/farmasystem/pos/pos/pkg/response"
)

const keyProducts = "pos:products"

// Service serves the product list the terminal adds items from. Products
// come from the backend and are kept in a redis read-through cache; stock
// shown here is a snapshot and may lag concurrent sales on other terminals.
type Service struct {
	backend *backend.Client
	cache   *redis.Client
	ttl     time.Duration
}

func NewService(backendClient *backend.Client, cache *redis.Client, ttl time.Duration) *Service {
	return &Service{backend: backendClient, cache: cache, ttl: ttl}
}

func parseExpiration(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func mapProduct(p backend.Product, now time.Time) response.Product {
	totalStock := int32(0)
	batches := make([]response.Batch, 0, len(p.Batches))
	var nearest *response.Batch
	for _, b := range p.Batches {
		expiration, err := parseExpiration(b.ExpirationDate)
		if err != nil {
			// Unparseable dates are kept but flagged expired so they
			// surface instead of silently passing as valid.
			expiration = time.Time{}
		}
		totalStock += b.Stock
		batch := response.Batch{
			ID:             b.ID,
			BatchCode:      b.BatchCode,
			ExpirationDate: expiration,
			Stock:          b.Stock,
			ExpiryStatus:   status.Expiry(expiration, now),
		}
		batches = append(batches, batch)
		if nearest == nil || batch.ExpirationDate.Before(nearest.ExpirationDate) {
			nearest = &batches[len(batches)-1]
		}
	}
	return response.Product{
		ID:           p.ID,
		Name:         p.Name,
		Sku:          p.Sku,
		Barcode:      p.Barcode,
		SalePrice:    p.SalePrice,
		MinStock:     p.MinStock,
		Provider:     p.Provider,
		TotalStock:   totalStock,
		StockStatus:  status.Stock(totalStock, p.MinStock),
		NearestBatch: nearest,
		Batches:      batches,
	}
}

func (s *Service) loadProducts(c context.Context) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService loadProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService loadProducts").
		Str(log.KeyCacheKey, keyProducts).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding products in cache").Logger()
	logger.Info().Msg("finding products in cache")
	jsonString, err := s.cache.Get(c, keyProducts).Result()
	if err != nil {
		err = fmt.Errorf("failed finding products in cache with error=%w", err)
		logger.Info().Err(err).Msg(err.Error())

		logger = logger.With().Str(log.KeyProcess, "finding products in backend").Logger()
		logger.Info().Msg("finding products in backend")
		c = logger.WithContext(c)
		raw, err := s.backend.FindProducts(c)
		if err != nil {
			err = fmt.Errorf("failed finding products in backend with error=%w", err)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		logger.Info().Msg("found products in backend")

		logger = logger.With().Str(log.KeyProcess, "mapping products").Logger()
		now := time.Now()
		products := make([]response.Product, len(raw))
		for i, p := range raw {
			products[i] = mapProduct(p, now)
		}
		logger.Info().Msg("mapped products")

		logger = logger.With().Str(log.KeyProcess, "inserting products to cache").Logger()
		logger.Info().Msg("inserting products to cache")
		productsJson, err := json.Marshal(products)
		if err != nil {
			err = fmt.Errorf("failed marshaling products with error=%w", err)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		err = s.cache.Set(c, keyProducts, productsJson, s.ttl).Err()
		if err != nil {
			err = fmt.Errorf("failed inserting products to cache with error=%w", err)
			inErrors.HandleError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		logger.Info().Msg("inserted products to cache")

		return products, nil
	}
	logger.Info().Msg("found products in cache")

	logger = logger.With().Str(log.KeyProcess, "unmarshaling cache").Logger()
	products := []response.Product{}
	err = json.Unmarshal([]byte(jsonString), &products)
	if err != nil {
		err = fmt.Errorf("failed unmarshaling cache with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	return products, nil
}

// FindProducts returns the catalog, optionally filtered by a
// case-insensitive match on name or SKU.
func (s *Service) FindProducts(c context.Context, query string) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindProducts").
		Str(log.KeyQuery, query).
		Logger()

	c = logger.WithContext(c)
	products, err := s.loadProducts(c)
	if err != nil {
		err = fmt.Errorf("failed loading products with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	if query == "" {
		return products, nil
	}

	needle := strings.ToLower(query)
	filtered := []response.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Sku), needle) {
			filtered = append(filtered, p)
		}
	}
	logger.Info().Int(log.KeyProductCount, len(filtered)).Msg("filtered products")

	return filtered, nil
}

func (s *Service) FindProductById(c context.Context, productId int64) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindProductById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindProductById").
		Int64(log.KeyProductID, productId).
		Logger()

	c = logger.WithContext(c)
	products, err := s.loadProducts(c)
	if err != nil {
		err = fmt.Errorf("failed loading products with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}

	for _, p := range products {
		if p.ID == productId {
			return p, nil
		}
	}

	err = fmt.Errorf("productId=%d: %w", productId, inErrors.ErrProductNotFound)
	inErrors.HandleError(err, span)
	logger.Error().Err(err).Msg(err.Error())
	return response.Product{}, err
}

// Invalidate drops the cached catalog so the next read refetches fresh
// stock from the backend, typically right after a successful sale.
func (s *Service) Invalidate(c context.Context) error {
	c, span := otel.Tracer.Start(c, "CatalogService Invalidate")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService Invalidate").
		Str(log.KeyCacheKey, keyProducts).
		Logger()

	logger.Info().Msg("deleting products from cache")
	err := s.cache.Del(c, keyProducts).Err()
	if err != nil {
		err = fmt.Errorf("failed deleting products from cache with error=%w", err)
		inErrors.HandleError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("deleted products from cache")

	return nil
}
