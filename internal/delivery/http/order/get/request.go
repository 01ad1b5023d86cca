package get

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/shop_saga/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/errors"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

var (
	errEmptyOrderIDs    = errors.New("no order ids passed")
	errInvalidOrderUUID = errors.New("invalid order_uuid")
	errInvalidUserUUID  = errors.New("invalid user_uuid")
	errInvalidPage      = errors.New("limit and offset must be non-negative integers")
)

// OrdersByUUIDsRequest is read from a comma separated uuids query parameter.
type OrdersByUUIDsRequest struct {
	UUIDs []string
}

func ordersByUUIDsRequest(r *http.Request) OrdersByUUIDsRequest {
	var req OrdersByUUIDsRequest
	for _, value := range r.URL.Query()["uuids"] {
		for _, id := range strings.Split(value, ",") {
			if id = strings.TrimSpace(id); id != "" {
				req.UUIDs = append(req.UUIDs, id)
			}
		}
	}

	return req
}

func (r *OrdersByUUIDsRequest) validate() error {
	if len(r.UUIDs) == 0 {
		return errEmptyOrderIDs
	}

	for _, orderUUID := range r.UUIDs {
		if _, err := uuid.Parse(orderUUID); err != nil {
			return errInvalidOrderUUID
		}
	}

	return nil
}

func (r *OrdersByUUIDsRequest) toServiceRepresentation() []uuid.UUID {
	result := make([]uuid.UUID, 0, len(r.UUIDs))

	for _, orderUUID := range r.UUIDs {
		result = append(result, uuid.MustParse(orderUUID))
	}

	return result
}

func orderUUIDParam(r *http.Request) (uuid.UUID, error) {
	orderUUID, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		return uuid.Nil, errInvalidOrderUUID
	}

	return orderUUID, nil
}

func userUUIDParam(r *http.Request) (uuid.UUID, error) {
	userUUID, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		return uuid.Nil, errInvalidUserUUID
	}

	return userUUID, nil
}

func statusParam(r *http.Request) (models.OrderStatus, error) {
	status, ok := models.ParseOrderStatus(chi.URLParam(r, "status"))
	if !ok {
		return models.UndefinedStatus, internalErrors.ErrStatusNotFound
	}

	return status, nil
}

type page struct {
	limit  int
	offset int
}

func pageParams(r *http.Request) (page, error) {
	p := page{limit: defaultLimit}

	query := r.URL.Query()
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return page{}, errInvalidPage
		}
		p.limit = min(limit, maxLimit)
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return page{}, errInvalidPage
		}
		p.offset = offset
	}

	return p, nil
}
