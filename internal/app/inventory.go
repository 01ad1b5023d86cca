package app

import (
	"context"
	"errors"
	"fmt"

	httpapp "github.com/tumbleweedd/two_services_system/shop_saga/internal/app/http"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/config"
	httpdelivery "github.com/tumbleweedd/two_services_system/shop_saga/internal/delivery/http"
	stockHandler "github.com/tumbleweedd/two_services_system/shop_saga/internal/delivery/http/stock"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/delivery/kafka/reservation"
	stockRepository "github.com/tumbleweedd/two_services_system/shop_saga/internal/repository/stock"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/services/inventory/reserve"
	stockService "github.com/tumbleweedd/two_services_system/shop_saga/internal/services/inventory/stock"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/brokers/kafka/consumer"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/brokers/kafka/producer"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// InventoryApp is the inventory service: the reservation consumer with its
// result publisher, and the HTTP stock API.
type InventoryApp struct {
	log logger.Logger

	HTTPServer   *httpapp.App
	Reservations *consumer.Group

	closers []closer
}

func NewInventoryApp(ctx context.Context, log logger.Logger, cfg *config.Config) (_ *InventoryApp, err error) {
	app := &InventoryApp{log: log}
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

	stockRepo := stockRepository.NewStockRepository(log, db.GetDB())
	reservations := reserve.New(log, cacheLayer, stockRepo)

	app.HTTPServer = httpapp.NewApp(log, httpdelivery.NewInventoryRouter(
		stockHandler.NewHandler(log, stockService.New(log, cacheLayer, stockRepo), reservations),
	), cfg.HTTP)

	group, err := consumer.NewConsumerGroup(cfg.Kafka.BrokerList, cfg.Kafka.ConsumerGroup)
	if err != nil {
		return nil, err
	}

	handler := reservation.NewHandler(log, reservations, publisher, cfg.Kafka.StockResultTopic)
	app.Reservations = consumer.NewGroup(log, group,
		[]string{cfg.Kafka.OrderCreatedTopic, cfg.Kafka.OrderCancelledTopic},
		consumer.NewGroupHandler(log, handler.Handle, publisher, consumerConfig(&cfg.Kafka)),
	)
	app.closers = append(app.closers, app.Reservations.Close)

	return app, nil
}

func (a *InventoryApp) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return a.HTTPServer.Run(ctx) })
	g.Go(func() error { return a.Reservations.Run(ctx) })

	if err := g.Wait(); err != nil {
		return fmt.Errorf("app.InventoryApp.Run: %w", err)
	}

	return nil
}

func (a *InventoryApp) Stop() error {
	return closeAll(a.closers)
}
