package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

const (
	GroupAdmins = "admins"

	defaultBuffer = 16
)

func UserGroup(userUUID uuid.UUID) string {
	return "user:" + userUUID.String()
}

type Event struct {
	Name     string    `json:"name"`
	UserUUID uuid.UUID `json:"user_uuid"`
	Payload  any       `json:"payload"`
	SentAt   time.Time `json:"sent_at"`
}

type connection struct {
	groups []string
	events chan Event
}

// Hub is the process-owned registry of connected clients. Connections join
// groups on Register and leave them on Unregister.
type Hub struct {
	log logger.Logger

	mu          sync.RWMutex
	connections map[string]*connection
	groups      map[string]map[string]struct{}
}

func NewHub(log logger.Logger) *Hub {
	return &Hub{
		log:         log,
		connections: make(map[string]*connection),
		groups:      make(map[string]map[string]struct{}),
	}
}

// Register adds a connection for userUUID. Admin connections also join GroupAdmins.
func (h *Hub) Register(connID string, userUUID uuid.UUID, admin bool) <-chan Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.connections[connID]; ok {
		h.removeLocked(connID, old)
	}

	groups := []string{UserGroup(userUUID)}
	if admin {
		groups = append(groups, GroupAdmins)
	}

	conn := &connection{
		groups: groups,
		events: make(chan Event, defaultBuffer),
	}
	h.connections[connID] = conn

	for _, group := range groups {
		members, ok := h.groups[group]
		if !ok {
			members = make(map[string]struct{})
			h.groups[group] = members
		}
		members[connID] = struct{}{}
	}

	return conn.events
}

func (h *Hub) Unregister(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, ok := h.connections[connID]; ok {
		h.removeLocked(connID, conn)
	}
}

func (h *Hub) removeLocked(connID string, conn *connection) {
	for _, group := range conn.groups {
		delete(h.groups[group], connID)
		if len(h.groups[group]) == 0 {
			delete(h.groups, group)
		}
	}

	delete(h.connections, connID)
	close(conn.events)
}

// Notify fans the event out to the owner's group and to admins. It never
// blocks: a connection with a full buffer misses the event.
func (h *Hub) Notify(ctx context.Context, name string, userUUID uuid.UUID, payload any) {
	const op = "notify.Hub.Notify"

	event := Event{
		Name:     name,
		UserUUID: userUUID,
		Payload:  payload,
		SentAt:   time.Now().UTC(),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := make(map[string]struct{})
	for _, group := range []string{UserGroup(userUUID), GroupAdmins} {
		for connID := range h.groups[group] {
			if _, ok := delivered[connID]; ok {
				continue
			}
			delivered[connID] = struct{}{}

			select {
			case h.connections[connID].events <- event:
			default:
				h.log.WarnContext(ctx, op, logger.String("dropped", name), logger.String("conn", connID))
			}
		}
	}
}

func (h *Hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.connections)
}
