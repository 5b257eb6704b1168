package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/service/order"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var filter entities.OrderFilter
	query := r.URL.Query()
	if customerID := query.Get("customer_id"); customerID != "" {
		filter.CustomerID = &customerID
	}
	if driverID := query.Get("driver_id"); driverID != "" {
		filter.DriverID = &driverID
	}
	if status := query.Get("status"); status != "" {
		statusType := entities.OrderStatusType(status)
		filter.Status = &statusType
	}

	orderEntities, err := h.service.GetOrders(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTOs := make([]dto.Order, len(orderEntities))
	for i := range orderEntities {
		orderDTOs[i] = dto.FromOrder(&orderEntities[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
