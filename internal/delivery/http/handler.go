package httpdelivery

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/delivery/http/notifications"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/delivery/http/order/cancel"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/delivery/http/order/create"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/delivery/http/order/get"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/delivery/http/order/status"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/delivery/http/stock"
)

type OrderHandlers struct {
	Create        *create.Handler
	Cancel        *cancel.Handler
	Status        *status.Handler
	Get           *get.Handler
	Notifications *notifications.Handler
}

func newRouter() chi.Router {
	mux := chi.NewRouter()
	mux.Use(middleware.RequestID, middleware.Recoverer)

	return mux
}

func NewOrderRouter(h OrderHandlers) http.Handler {
	mux := newRouter()

	mux.Route("/order", func(r chi.Router) {
		r.Post("/", h.Create.Create)
		r.Post("/items", h.Create.CreateWithItems)
		r.Post("/cancel", h.Cancel.Cancel)
		r.Post("/status", h.Status.UpdateStatus)
		r.Get("/{uuid}", h.Get.Order)
	})

	mux.Route("/orders", func(r chi.Router) {
		r.Get("/", h.Get.OrdersByUUIDs)
		r.Get("/user/{uuid}", h.Get.OrdersByUser)
		r.Get("/status/{status}", h.Get.OrdersByStatus)
	})

	mux.Get("/notifications", h.Notifications.Stream)

	return mux
}

func NewInventoryRouter(h *stock.Handler) http.Handler {
	mux := newRouter()

	mux.Route("/stock", func(r chi.Router) {
		r.Get("/", h.Stocks)
		r.Post("/restock", h.Restock)
		r.Get("/{uuid}", h.Stock)
	})

	mux.Get("/stats", h.Stats)

	return mux
}
