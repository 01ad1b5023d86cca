package reserve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/cache"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/repository/stock"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

// ReasonCancelledBeforeReservation is the stored outcome of a reservation
// whose order was cancelled before the reservation arrived.
const ReasonCancelledBeforeReservation = "order cancelled before reservation"

var errRejected = errors.New("rejected")

type stockStore interface {
	Ledger(ctx context.Context, requestUUID uuid.UUID) (*models.LedgerRecord, error)
	WithinTx(ctx context.Context, fn func(tx stock.Tx) error) error
}

type Service struct {
	log   logger.Logger
	cache *cache.Layer
	store stockStore
	stats *Stats
	now   func() time.Time
}

func New(log logger.Logger, cache *cache.Layer, store stockStore) *Service {
	return &Service{
		log:   log,
		cache: cache,
		store: store,
		stats: &Stats{},
		now:   time.Now,
	}
}

func (s *Service) Stats() StatsSnapshot {
	return s.stats.Snapshot()
}

// Apply dispatches env by kind.
func (s *Service) Apply(ctx context.Context, env models.Envelope) (models.ResultEnvelope, error) {
	switch env.Kind {
	case models.KindOrderCreated:
		return s.ApplyReservation(ctx, env)
	case models.KindOrderCancelled:
		return s.ApplyCompensation(ctx, env)
	default:
		return models.ResultEnvelope{}, fmt.Errorf("services.reserve.Apply: kind %q: %w", env.Kind, internalErrors.ErrMalformedMessage)
	}
}

// ApplyReservation takes every line of env from stock or nothing at all.
// A request that was already applied returns its stored outcome. Rejections
// are not recorded, so a retry after a restock can still succeed. The
// returned error is reserved for storage failures.
func (s *Service) ApplyReservation(ctx context.Context, env models.Envelope) (models.ResultEnvelope, error) {
	const op = "services.reserve.ApplyReservation"

	if res, ok, err := s.replay(ctx, env.RequestUUID); err != nil || ok {
		return res, err
	}

	if err := validateLines(env.Lines); err != nil {
		s.stats.rejected.Add(1)
		return models.FailedResult(&env, err.Error(), s.now()), nil
	}

	var (
		result models.ResultEnvelope
		stored *models.LedgerRecord
	)

	err := s.store.WithinTx(ctx, func(tx stock.Tx) error {
		lines := make([]models.ResultLine, 0, len(env.Lines))

		for _, line := range env.Lines {
			remaining, err := tx.Decrement(ctx, line.ProductUUID, line.Quantity)
			if err != nil {
				if errors.Is(err, internalErrors.ErrProductNotFound) || errors.Is(err, internalErrors.ErrInsufficientStock) {
					result = models.FailedResult(&env, fmt.Sprintf("%s: %s", err, line.ProductUUID), s.now())
					return errRejected
				}
				return err
			}

			lines = append(lines, models.ResultLine{
				ProductUUID: line.ProductUUID,
				Quantity:    line.Quantity,
				Remaining:   remaining,
			})
		}

		result = s.succeeded(env, lines)

		var err error
		stored, err = s.record(ctx, tx, result, true)
		return err
	})

	switch {
	case err == nil:
	case errors.Is(err, internalErrors.ErrAlreadyRecorded):
		s.stats.duplicates.Add(1)
		return stored.Result()
	case errors.Is(err, errRejected):
		// a concurrent duplicate may have taken the stock this one needed
		if res, ok, replayErr := s.replay(ctx, env.RequestUUID); replayErr != nil || ok {
			return res, replayErr
		}

		s.stats.rejected.Add(1)
		s.log.InfoContext(ctx, op, logger.String("request_uuid", env.UUID()), logger.String("rejected", result.Error))
		return result, nil
	default:
		s.log.ErrorContext(ctx, op, logger.String("request_uuid", env.UUID()), logger.Err(err))
		return models.ResultEnvelope{}, fmt.Errorf("%s: %w", op, err)
	}

	s.stats.processed.Add(1)
	s.cache.Invalidate(ctx, cache.StockTags(productUUIDs(env.Lines)...)...)

	return result, nil
}

// ApplyCompensation returns to stock what the referenced reservation took.
// If that reservation never ran, a tombstone is left in its place so it is
// refused when it arrives later.
func (s *Service) ApplyCompensation(ctx context.Context, env models.Envelope) (models.ResultEnvelope, error) {
	const op = "services.reserve.ApplyCompensation"

	if res, ok, err := s.replay(ctx, env.RequestUUID); err != nil || ok {
		return res, err
	}

	if err := validateLines(env.Lines); err != nil {
		s.stats.rejected.Add(1)
		return models.FailedResult(&env, err.Error(), s.now()), nil
	}

	var (
		result   models.ResultEnvelope
		stored   *models.LedgerRecord
		credited bool
	)

	err := s.store.WithinTx(ctx, func(tx stock.Tx) error {
		credit, err := s.reservationApplied(ctx, tx, env)
		if err != nil {
			return err
		}

		lines := make([]models.ResultLine, 0, len(env.Lines))

		if credit {
			for _, line := range env.Lines {
				remaining, err := tx.Increment(ctx, line.ProductUUID, line.Quantity)
				if err != nil {
					if errors.Is(err, internalErrors.ErrProductNotFound) {
						result = models.FailedResult(&env, fmt.Sprintf("%s: %s", err, line.ProductUUID), s.now())
						return errRejected
					}
					return err
				}

				lines = append(lines, models.ResultLine{
					ProductUUID: line.ProductUUID,
					Quantity:    line.Quantity,
					Remaining:   remaining,
				})
			}
		}

		credited = credit
		result = s.succeeded(env, lines)

		stored, err = s.record(ctx, tx, result, credit)
		return err
	})

	switch {
	case err == nil:
	case errors.Is(err, internalErrors.ErrAlreadyRecorded):
		s.stats.duplicates.Add(1)
		return stored.Result()
	case errors.Is(err, errRejected):
		s.stats.rejected.Add(1)
		s.log.WarnContext(ctx, op, logger.String("request_uuid", env.UUID()), logger.String("rejected", result.Error))
		return result, nil
	default:
		s.log.ErrorContext(ctx, op, logger.String("request_uuid", env.UUID()), logger.Err(err))
		return models.ResultEnvelope{}, fmt.Errorf("%s: %w", op, err)
	}

	s.stats.processed.Add(1)
	if credited {
		s.cache.Invalidate(ctx, cache.StockTags(productUUIDs(env.Lines)...)...)
	}

	return result, nil
}

// reservationApplied reports whether the reservation env compensates took
// stock. When no reservation is recorded yet it writes the tombstone.
func (s *Service) reservationApplied(ctx context.Context, tx stock.Tx, env models.Envelope) (bool, error) {
	if env.ReservationRequestUUID == uuid.Nil {
		return true, nil
	}

	tombstone, err := models.NewLedgerRecord(models.ResultEnvelope{
		RequestUUID: env.ReservationRequestUUID,
		Kind:        models.KindOrderCreated,
		OrderUUID:   env.OrderUUID,
		Success:     false,
		Lines:       []models.ResultLine{},
		Error:       ReasonCancelledBeforeReservation,
		ProcessedAt: s.now().UTC(),
	}, false)
	if err != nil {
		return false, err
	}

	claimed, err := tx.Claim(ctx, tombstone)
	if err != nil {
		return false, err
	}
	if claimed {
		return false, nil
	}

	reservation, err := tx.Record(ctx, env.ReservationRequestUUID)
	if err != nil {
		return false, err
	}

	return reservation != nil && reservation.Applied, nil
}

// record writes the ledger entry for result. When another delivery already
// wrote it, the stored record is returned with ErrAlreadyRecorded so the
// transaction rolls back.
func (s *Service) record(ctx context.Context, tx stock.Tx, result models.ResultEnvelope, applied bool) (*models.LedgerRecord, error) {
	rec, err := models.NewLedgerRecord(result, applied)
	if err != nil {
		return nil, err
	}

	claimed, err := tx.Claim(ctx, rec)
	if err != nil {
		return nil, err
	}
	if claimed {
		return nil, nil
	}

	stored, err := tx.Record(ctx, result.RequestUUID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, fmt.Errorf("ledger record %s vanished", result.RequestUUID)
	}

	return stored, internalErrors.ErrAlreadyRecorded
}

func (s *Service) replay(ctx context.Context, requestUUID uuid.UUID) (models.ResultEnvelope, bool, error) {
	const op = "services.reserve.replay"

	rec, err := s.store.Ledger(ctx, requestUUID)
	if err != nil {
		return models.ResultEnvelope{}, false, fmt.Errorf("%s: %w", op, err)
	}
	if rec == nil {
		return models.ResultEnvelope{}, false, nil
	}

	result, err := rec.Result()
	if err != nil {
		return models.ResultEnvelope{}, false, fmt.Errorf("%s: decode outcome: %w", op, err)
	}

	s.stats.duplicates.Add(1)
	s.log.DebugContext(ctx, op, logger.String("request_uuid", requestUUID.String()))

	return result, true, nil
}

func (s *Service) succeeded(env models.Envelope, lines []models.ResultLine) models.ResultEnvelope {
	return models.ResultEnvelope{
		RequestUUID: env.RequestUUID,
		Kind:        env.Kind,
		OrderUUID:   env.OrderUUID,
		Success:     true,
		Lines:       lines,
		ProcessedAt: s.now().UTC(),
	}
}

func validateLines(lines []models.EnvelopeLine) error {
	for _, line := range lines {
		if line.Quantity <= 0 {
			return fmt.Errorf("%w: %d for %s", internalErrors.ErrInvalidQuantity, line.Quantity, line.ProductUUID)
		}
	}

	return nil
}

func productUUIDs(lines []models.EnvelopeLine) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductUUID)
	}

	return ids
}
