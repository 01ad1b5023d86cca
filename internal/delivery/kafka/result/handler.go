package result

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/brokers/kafka/consumer"
)

//go:generate mockgen -source=handler.go -destination=mock_test.go -package=result

type resultHandler interface {
	Handle(ctx context.Context, res models.ResultEnvelope) error
}

// Handler feeds reservation results from the inventory side into the order saga.
type Handler struct {
	results resultHandler
}

func NewHandler(results resultHandler) *Handler {
	return &Handler{results: results}
}

func (h *Handler) Handle(ctx context.Context, msg *sarama.ConsumerMessage) error {
	const op = "delivery.kafka.result.Handle"

	var res models.ResultEnvelope
	if err := json.Unmarshal(msg.Value, &res); err != nil {
		return consumer.Permanent(fmt.Errorf("%s: %w: %v", op, internalErrors.ErrMalformedMessage, err))
	}

	if res.OrderUUID == uuid.Nil || res.RequestUUID == uuid.Nil {
		return consumer.Permanent(fmt.Errorf("%s: %w: missing ids", op, internalErrors.ErrMalformedMessage))
	}

	if err := h.results.Handle(ctx, res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
