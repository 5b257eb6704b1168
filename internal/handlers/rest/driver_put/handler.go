package driver_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/service/driverpool"
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

	var driverUpdateDTO dto.DriverUpdate
	err := json.NewDecoder(r.Body).Decode(&driverUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverModifyEntity := entities.DriverModify{
		ID:     &id,
		Name:   driverUpdateDTO.Name,
		Phone:  driverUpdateDTO.Phone,
		Rating: driverUpdateDTO.Rating,
	}
	if driverUpdateDTO.Status != nil {
		statusType := entities.DriverStatusType(*driverUpdateDTO.Status)
		driverModifyEntity.Status = &statusType
	}
	if driverUpdateDTO.Vehicle != nil {
		driverModifyEntity.Vehicle = &entities.Vehicle{
			Type:        entities.VehicleType(driverUpdateDTO.Vehicle.Type),
			Fuel:        entities.FuelType(driverUpdateDTO.Vehicle.Fuel),
			Plate:       driverUpdateDTO.Vehicle.Plate,
			MaxWeightKg: driverUpdateDTO.Vehicle.MaxWeightKg,
			MaxVolumeL:  driverUpdateDTO.Vehicle.MaxVolumeL,
		}
	}

	driverEntity, err := h.service.UpdateDriver(r.Context(), driverModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, driverpool.ErrInvalidDriverID),
			errors.Is(err, driverpool.ErrMissingRequiredFields),
			errors.Is(err, driverpool.ErrInvalidName),
			errors.Is(err, driverpool.ErrInvalidPhone),
			errors.Is(err, driverpool.ErrInvalidStatus),
			errors.Is(err, driverpool.ErrInvalidVehicle),
			errors.Is(err, driverpool.ErrInvalidLocation),
			errors.Is(err, driverpool.ErrInvalidRating):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driverpool.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driverpool.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	driverDTO := dto.FromDriver(driverEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(driverDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
