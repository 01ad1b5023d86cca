package stock

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/cache"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

//go:generate mockgen -source=service.go -destination=mock_test.go -package=stock

type stockRepository interface {
	Stock(ctx context.Context, productUUID uuid.UUID) (*models.ProductStock, error)
	Stocks(ctx context.Context) ([]models.ProductStock, error)
	Restock(ctx context.Context, productUUID uuid.UUID, qty int) (*models.ProductStock, error)
}

type Service struct {
	log        logger.Logger
	cache      *cache.Layer
	repository stockRepository
}

func New(log logger.Logger, cache *cache.Layer, repository stockRepository) *Service {
	return &Service{
		log:        log,
		cache:      cache,
		repository: repository,
	}
}

func (s *Service) Stock(ctx context.Context, productUUID uuid.UUID) (*models.ProductStock, error) {
	const op = "services.stock.Stock"

	ps, err := cache.Fetch(ctx, s.cache, cache.TagProduct(productUUID), "stock", func(ctx context.Context) (*models.ProductStock, error) {
		return s.repository.Stock(ctx, productUUID)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ps, nil
}

func (s *Service) Stocks(ctx context.Context) ([]models.ProductStock, error) {
	const op = "services.stock.Stocks"

	stocks, err := cache.Fetch(ctx, s.cache, cache.TagProductList, "all", s.repository.Stocks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stocks, nil
}

func (s *Service) Restock(ctx context.Context, productUUID uuid.UUID, qty int) (*models.ProductStock, error) {
	const op = "services.stock.Restock"

	if qty <= 0 {
		return nil, fmt.Errorf("%s: %d: %w", op, qty, internalErrors.ErrInvalidQuantity)
	}

	ps, err := s.repository.Restock(ctx, productUUID, qty)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, cache.StockTags(productUUID)...)
	s.log.InfoContext(ctx, op, logger.String("product_uuid", productUUID.String()), logger.Int("available", ps.Available))

	return ps, nil
}
