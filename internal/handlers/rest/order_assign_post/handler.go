package order_assign_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/service/dispatch"
	"dispatch/internal/service/driverpool"
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
	id := mux.Vars(r)["id"]

	// The body is optional. Without a driver id the dispatcher picks one.
	var assignDTO dto.OrderAssign
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var result *order.AssignmentResult
	if assignDTO.DriverID != nil {
		result, err = h.service.AssignDriverManual(r.Context(), id, *assignDTO.DriverID)
	} else {
		result, err = h.service.AssignDriver(r.Context(), id)
	}
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, driverpool.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, driverpool.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrAlreadyAssigned),
			errors.Is(err, driverpool.ErrDriverNotAvailable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	assignment := dto.Assignment{
		Matched:    result.Matched,
		DistanceKm: result.DistanceKm,
		Reason:     result.Reason,
	}
	if result.Matched {
		assignment.DriverID = result.Order.DriverID
		assignment.DriverName = result.Order.DriverName

		if assessment := dispatch.AssessDistance(result.DistanceKm); assessment.Level == dispatch.DistanceWarning ||
			assessment.Level == dispatch.DistanceCritical {
			assignment.Warning = assessment.Message
		}
	}

	response := dto.OrderCreateResponse{
		Order:      dto.FromOrder(result.Order),
		Assignment: &assignment,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
