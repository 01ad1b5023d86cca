package app

import (
	"context"
	"errors"
	"fmt"

	httpapp "github.com/tumbleweedd/two_services_system/shop_saga/internal/app/http"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/cache"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/config"
	httpdelivery "github.com/tumbleweedd/two_services_system/shop_saga/internal/delivery/http"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/delivery/http/notifications"
	cancelHandler "github.com/tumbleweedd/two_services_system/shop_saga/internal/delivery/http/order/cancel"
	createHandler "github.com/tumbleweedd/two_services_system/shop_saga/internal/delivery/http/order/create"
	getHandler "github.com/tumbleweedd/two_services_system/shop_saga/internal/delivery/http/order/get"
	statusHandler "github.com/tumbleweedd/two_services_system/shop_saga/internal/delivery/http/order/status"
	resultHandler "github.com/tumbleweedd/two_services_system/shop_saga/internal/delivery/kafka/result"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/notify"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/repository/lookup"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/repository/order"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/repository/outBox"
	orderCancellationService "github.com/tumbleweedd/two_services_system/shop_saga/internal/services/order/cancel"
	orderCreationService "github.com/tumbleweedd/two_services_system/shop_saga/internal/services/order/create"
	orderRetrievalService "github.com/tumbleweedd/two_services_system/shop_saga/internal/services/order/get"
	reservationResultService "github.com/tumbleweedd/two_services_system/shop_saga/internal/services/order/result"
	orderStatusService "github.com/tumbleweedd/two_services_system/shop_saga/internal/services/order/status"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/services/outBox/send"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/services/reconcile"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/brokers/kafka/consumer"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/brokers/kafka/producer"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// OrderApp is the order service: HTTP API, outbox relay, reservation result
// consumer and the Pending reconciliation sweep.
type OrderApp struct {
	log logger.Logger

	HTTPServer *httpapp.App
	Relay      *send.Service
	Sweep      *reconcile.Service
	Results    *consumer.Group

	closers []closer
}

func NewOrderApp(ctx context.Context, log logger.Logger, cfg *config.Config) (_ *OrderApp, err error) {
	app := &OrderApp{log: log}
	defer func() {
		if err != nil {
			err = errors.Join(err, app.Stop())
		}
	}()

	db, err := setupDatabase(ctx, log, &cfg.Postgres)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, db.Close)

	cacheLayer, closeCache, err := setupCache(ctx, log, cfg)
	if err != nil {
		return nil, err
	}
	if closeCache != nil {
		app.closers = append(app.closers, closeCache)
	}

	syncProducer, err := producer.NewSyncProducer(cfg.Kafka.BrokerList)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, syncProducer.Close)
	publisher := producer.NewPublisher(log, syncProducer)

	outBoxRepo := outBox.New(log, db.GetDB())
	orderRepo := order.NewOrderRepository(log, db.GetDB(), outBoxRepo)
	lookupRepo := lookup.New(log, db.GetDB())

	app.Relay = newRelay(log, cfg, publisher, outBoxRepo)
	app.Sweep = reconcile.New(log, reconcile.Config{
		Interval:         cfg.Reconciliation.Interval,
		PendingThreshold: cfg.Reconciliation.PendingThreshold,
		BatchSize:        cfg.Reconciliation.BatchSize,
	}, orderRepo, outBoxRepo, app.Relay)

	hub := notify.NewHub(log)

	cancellation := orderCancellationService.New(log, cacheLayer, orderRepo, hub, app.Relay)
	app.HTTPServer = httpapp.NewApp(log, httpdelivery.NewOrderRouter(httpdelivery.OrderHandlers{
		Create:        createHandler.NewHandler(log, orderCreationService.New(log, cacheLayer, orderRepo, lookupRepo, hub, app.Relay)),
		Cancel:        cancelHandler.NewHandler(log, cancellation),
		Status:        statusHandler.NewHandler(log, orderStatusService.New(log, cacheLayer, orderRepo, lookupRepo, cancellation, hub)),
		Get:           getHandler.NewHandler(log, orderRetrievalService.New(log, cacheLayer, orderRepo)),
		Notifications: notifications.NewHandler(log, hub, 0),
	}), cfg.HTTP)

	app.Results, err = newResultConsumer(log, cfg, cacheLayer, orderRepo, hub, publisher)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, app.Results.Close)

	return app, nil
}

func newRelay(log logger.Logger, cfg *config.Config, publisher *producer.Publisher, outBoxRepo *outBox.Repository) *send.Service {
	return send.New(log, send.Config{
		Topics: map[models.EnvelopeKind]string{
			models.KindOrderCreated:   cfg.Kafka.OrderCreatedTopic,
			models.KindOrderCancelled: cfg.Kafka.OrderCancelledTopic,
		},
		BatchSize:    cfg.Outbox.BatchSize,
		MaxAttempts:  cfg.Outbox.MaxAttempts,
		PollInterval: cfg.Outbox.PollInterval,
		Lease:        cfg.Outbox.Lease,
	}, publisher, outBoxRepo)
}

func newResultConsumer(
	log logger.Logger,
	cfg *config.Config,
	cacheLayer *cache.Layer,
	orderRepo *order.Repository,
	hub *notify.Hub,
	publisher *producer.Publisher,
) (*consumer.Group, error) {
	group, err := consumer.NewConsumerGroup(cfg.Kafka.BrokerList, cfg.Kafka.ConsumerGroup)
	if err != nil {
		return nil, err
	}

	results := reservationResultService.New(log, cacheLayer, orderRepo, hub)
	handler := consumer.NewGroupHandler(log, resultHandler.NewHandler(results).Handle, publisher, consumerConfig(&cfg.Kafka))

	return consumer.NewGroup(log, group, []string{cfg.Kafka.StockResultTopic}, handler), nil
}

// Run blocks until ctx is done or one of the components fails.
func (a *OrderApp) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return a.HTTPServer.Run(ctx) })
	g.Go(func() error { return a.Relay.Run(ctx) })
	g.Go(func() error { return a.Sweep.Run(ctx) })
	g.Go(func() error { return a.Results.Run(ctx) })

	if err := g.Wait(); err != nil {
		return fmt.Errorf("app.OrderApp.Run: %w", err)
	}

	return nil
}

// Stop releases connections in reverse order of creation.
func (a *OrderApp) Stop() error {
	return closeAll(a.closers)
}
