package cache

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
)

// Tag names a family of cached entries that are invalidated together.
type Tag string

const (
	TagAllOrders   Tag = "orders:all"
	TagProductList Tag = "products:list"
)

func TagOrder(orderUUID uuid.UUID) Tag {
	return Tag("order:" + orderUUID.String())
}

func TagUserOrders(userUUID uuid.UUID) Tag {
	return Tag("orders:user:" + userUUID.String())
}

func TagStatusOrders(status models.OrderStatus) Tag {
	return Tag(fmt.Sprintf("orders:status:%d", int(status)))
}

func TagProduct(productUUID uuid.UUID) Tag {
	return Tag("product:" + productUUID.String())
}

// OrderTags lists every tag a change to order may have made stale.
// Pass the previous status when the status changed.
func OrderTags(order *models.Order, previous ...models.OrderStatus) []Tag {
	tags := []Tag{
		TagAllOrders,
		TagOrder(order.OrderUUID),
		TagUserOrders(order.UserUUID),
		TagStatusOrders(order.Status),
	}

	for _, status := range previous {
		if status != order.Status {
			tags = append(tags, TagStatusOrders(status))
		}
	}

	return tags
}

func StockTags(productUUIDs ...uuid.UUID) []Tag {
	tags := make([]Tag, 0, len(productUUIDs)+1)
	tags = append(tags, TagProductList)

	seen := make(map[uuid.UUID]struct{}, len(productUUIDs))
	for _, id := range productUUIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		tags = append(tags, TagProduct(id))
	}

	return tags
}
