package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/service/dispatch"
	"dispatch/internal/service/order"
	"dispatch/pkg/geo"
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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	draft := entities.Order{
		CustomerID: orderCreateDTO.CustomerID,
		Pickup: entities.Address{
			Street:  orderCreateDTO.Pickup.Street,
			Commune: orderCreateDTO.Pickup.Commune,
			Region:  orderCreateDTO.Pickup.Region,
			Coordinate: geo.Coordinate{
				Lat: orderCreateDTO.Pickup.Lat,
				Lon: orderCreateDTO.Pickup.Lon,
			},
		},
		Dropoff: entities.Address{
			Street:  orderCreateDTO.Dropoff.Street,
			Commune: orderCreateDTO.Dropoff.Commune,
			Region:  orderCreateDTO.Dropoff.Region,
			Coordinate: geo.Coordinate{
				Lat: orderCreateDTO.Dropoff.Lat,
				Lon: orderCreateDTO.Dropoff.Lon,
			},
		},
		Package: entities.Package{
			Type:        entities.PackageType(orderCreateDTO.Package.Type),
			Description: orderCreateDTO.Package.Description,
			WeightKg:    orderCreateDTO.Package.WeightKg,
			LengthCm:    orderCreateDTO.Package.LengthCm,
			WidthCm:     orderCreateDTO.Package.WidthCm,
			HeightCm:    orderCreateDTO.Package.HeightCm,
			Fragile:     orderCreateDTO.Package.Fragile,
		},
		ScheduledFor: orderCreateDTO.ScheduledFor,
	}

	result, err := h.service.CreateOrder(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidCustomerID),
			errors.Is(err, order.ErrInvalidAddress),
			errors.Is(err, order.ErrInvalidPackage):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrConflict):
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
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
