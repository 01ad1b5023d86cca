package get

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/cache"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

//go:generate mockgen -source=service.go -destination=mock_test.go -package=get

const orderKey = "order"

type orderGetter interface {
	OrdersByUUIDs(ctx context.Context, UUIDs []uuid.UUID) (map[uuid.UUID]models.Order, error)
	Order(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error)
	OrdersByUser(ctx context.Context, userUUID uuid.UUID, limit, offset int) ([]models.Order, error)
	OrdersByStatus(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, error)
}

type OrderRetrievalService struct {
	log   logger.Logger
	cache *cache.Layer

	orderGetter orderGetter
}

func New(
	log logger.Logger,
	cache *cache.Layer,
	orderGetter orderGetter,
) *OrderRetrievalService {
	return &OrderRetrievalService{
		log:         log,
		cache:       cache,
		orderGetter: orderGetter,
	}
}

func (os *OrderRetrievalService) Order(ctx context.Context, orderUUID uuid.UUID) (*models.Order, error) {
	const op = "service.order.Order"

	order, err := cache.Fetch(ctx, os.cache, cache.TagOrder(orderUUID), orderKey, func(ctx context.Context) (*models.Order, error) {
		return os.orderGetter.Order(ctx, orderUUID)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return order, nil
}

// OrdersByUUIDs returns the orders that exist among UUIDs. Cached orders are
// served from the cache and the rest are loaded in one query.
func (os *OrderRetrievalService) OrdersByUUIDs(ctx context.Context, UUIDs []uuid.UUID) ([]models.Order, error) {
	const op = "service.order.OrdersByUUIDs"

	result, notInCache := os.partitionOrdersByCache(ctx, UUIDs)

	if len(notInCache) == 0 {
		return result, nil
	}

	return os.fetchNotInCacheOrders(ctx, notInCache, result, op)
}

func (os *OrderRetrievalService) partitionOrdersByCache(ctx context.Context, UUIDs []uuid.UUID) (result []models.Order, notInCache []uuid.UUID) {
	inCacheCh := make(chan models.Order, len(UUIDs))
	notInCacheCh := make(chan uuid.UUID, len(UUIDs))
	wg := sync.WaitGroup{}

	for _, id := range UUIDs {
		wg.Add(1)
		go os.checkCache(ctx, id, &wg, inCacheCh, notInCacheCh)
	}

	wg.Wait()
	close(inCacheCh)
	close(notInCacheCh)

	result = make([]models.Order, 0, len(UUIDs))
	for order := range inCacheCh {
		result = append(result, order)
	}

	notInCache = make([]uuid.UUID, 0, len(UUIDs))
	for orderUUID := range notInCacheCh {
		notInCache = append(notInCache, orderUUID)
	}

	return result, notInCache
}

func (os *OrderRetrievalService) checkCache(
	ctx context.Context,
	orderUUID uuid.UUID,
	wg *sync.WaitGroup,
	inCacheCh chan<- models.Order,
	notInCacheCh chan<- uuid.UUID,
) {
	defer wg.Done()

	order, ok := cache.Lookup[*models.Order](ctx, os.cache, cache.TagOrder(orderUUID), orderKey)
	if ok && order != nil {
		inCacheCh <- *order
		return
	}

	notInCacheCh <- orderUUID
}

func (os *OrderRetrievalService) fetchNotInCacheOrders(ctx context.Context, notInCache []uuid.UUID,
	result []models.Order, op string) ([]models.Order, error) {
	ordersMap, err := os.orderGetter.OrdersByUUIDs(ctx, notInCache)
	if err != nil {
		if errors.Is(err, internalErrors.ErrOrderNotFound) {
			return result, nil
		}

		os.log.Error(op, logger.String("get orders error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, order := range ordersMap {
		order := order
		result = append(result, order)
		cache.Put(ctx, os.cache, cache.TagOrder(order.OrderUUID), orderKey, &order)
	}

	os.log.DebugContext(ctx, op, logger.Int("orders from DB", len(ordersMap)))

	return result, nil
}

func (os *OrderRetrievalService) OrdersByUser(ctx context.Context, userUUID uuid.UUID, limit, offset int) ([]models.Order, error) {
	const op = "service.order.OrdersByUser"

	key := fmt.Sprintf("%d:%d", limit, offset)
	orders, err := cache.Fetch(ctx, os.cache, cache.TagUserOrders(userUUID), key, func(ctx context.Context) ([]models.Order, error) {
		return os.orderGetter.OrdersByUser(ctx, userUUID, limit, offset)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}

func (os *OrderRetrievalService) OrdersByStatus(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, error) {
	const op = "service.order.OrdersByStatus"

	if !status.Valid() {
		return nil, fmt.Errorf("%s: %w", op, internalErrors.ErrStatusNotFound)
	}

	key := fmt.Sprintf("%d:%d", limit, offset)
	orders, err := cache.Fetch(ctx, os.cache, cache.TagStatusOrders(status), key, func(ctx context.Context) ([]models.Order, error) {
		return os.orderGetter.OrdersByStatus(ctx, status, limit, offset)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return orders, nil
}
