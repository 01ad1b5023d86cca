package notifications

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/response"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/notify"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

const defaultKeepAlive = 15 * time.Second

type registry interface {
	Register(connID string, userUUID uuid.UUID, admin bool) <-chan notify.Event
	Unregister(connID string)
}

type Handler struct {
	log       logger.Logger
	registry  registry
	keepAlive time.Duration
}

func NewHandler(log logger.Logger, registry registry, keepAlive time.Duration) *Handler {
	if keepAlive <= 0 {
		keepAlive = defaultKeepAlive
	}

	return &Handler{
		log:       log,
		registry:  registry,
		keepAlive: keepAlive,
	}
}

// Stream holds the connection open and writes every event addressed to the
// user as a server-sent event until the client goes away.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.notifications.Stream"

	userUUID, err := uuid.Parse(r.URL.Query().Get("user_uuid"))
	if err != nil {
		response.BadRequest(w, h.log, op, fmt.Errorf("invalid user_uuid: %w", err))
		return
	}
	admin, _ := strconv.ParseBool(r.URL.Query().Get("admin"))

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.Write(w, http.StatusInternalServerError, false, "streaming unsupported", nil)
		return
	}

	connID := uuid.NewString()
	events := h.registry.Register(connID, userUUID, admin)
	defer h.registry.Unregister(connID)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.log.Debug(op, logger.String("conn", connID), logger.String("user_uuid", userUUID.String()))

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if _, err = fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case event, ok := <-events:
			if !ok {
				return
			}

			data, err := json.Marshal(event)
			if err != nil {
				h.log.Error(op, logger.Err(err))
				continue
			}

			if _, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
