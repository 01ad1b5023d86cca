package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	internalErrors "github.com/tumbleweedd/two_services_system/shop_saga/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/shop_saga/pkg/logger"
)

// Response is the body of every API reply.
type Response struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

var validate = validator.New()

var errStatus = []struct {
	err    error
	status int
}{
	{internalErrors.ErrOrderNotFound, http.StatusNotFound},
	{internalErrors.ErrUserNotFound, http.StatusNotFound},
	{internalErrors.ErrStatusNotFound, http.StatusNotFound},
	{internalErrors.ErrProductNotFound, http.StatusNotFound},
	{internalErrors.ErrOrderAlreadyCanceled, http.StatusConflict},
	{internalErrors.ErrCancelOrderByStatus, http.StatusConflict},
	{internalErrors.ErrInvalidStatusTransition, http.StatusConflict},
	{internalErrors.ErrConcurrentUpdate, http.StatusConflict},
	{internalErrors.ErrReservationPending, http.StatusConflict},
	{internalErrors.ErrInsufficientStock, http.StatusConflict},
	{internalErrors.ErrInvalidOrder, http.StatusBadRequest},
	{internalErrors.ErrInvalidQuantity, http.StatusBadRequest},
	{internalErrors.ErrMalformedMessage, http.StatusBadRequest},
}

// Decode reads a JSON body into v and checks its validate tags.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}

	return Validate(v)
}

func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("validate request: %w", err)
	}

	return nil
}

func OK(w http.ResponseWriter, message string, data any) {
	Write(w, http.StatusOK, true, message, data)
}

func Created(w http.ResponseWriter, message string, data any) {
	Write(w, http.StatusCreated, true, message, data)
}

func BadRequest(w http.ResponseWriter, log logger.Logger, op string, err error) {
	log.Error(op, logger.String("bad request", err.Error()))
	Write(w, http.StatusBadRequest, false, err.Error(), nil)
}

// Error maps err to a status code. Unknown errors are reported as 500
// without their text.
func Error(w http.ResponseWriter, log logger.Logger, op string, err error) {
	status := StatusOf(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		log.Error(op, logger.Err(err))
		message = http.StatusText(status)
	} else {
		log.Info(op, logger.String("rejected", err.Error()))
	}

	Write(w, status, false, message, nil)
}

func StatusOf(err error) int {
	for _, e := range errStatus {
		if errors.Is(err, e.err) {
			return e.status
		}
	}

	return http.StatusInternalServerError
}

func Write(w http.ResponseWriter, status int, success bool, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(Response{
		Success: success,
		Code:    status,
		Message: message,
		Data:    data,
	})
}
