package driver_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/service/driverpool"
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
	var driverCreateDTO dto.DriverCreate
	err := json.NewDecoder(r.Body).Decode(&driverCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverModifyEntity := entities.DriverModify{
		Name:   &driverCreateDTO.Name,
		Phone:  &driverCreateDTO.Phone,
		Rating: driverCreateDTO.Rating,
	}
	if driverCreateDTO.Status != nil {
		statusType := entities.DriverStatusType(*driverCreateDTO.Status)
		driverModifyEntity.Status = &statusType
	}
	if driverCreateDTO.Lat != nil && driverCreateDTO.Lon != nil {
		driverModifyEntity.Location = &geo.Coordinate{
			Lat: *driverCreateDTO.Lat,
			Lon: *driverCreateDTO.Lon,
		}
	}
	if driverCreateDTO.Vehicle != nil {
		driverModifyEntity.Vehicle = &entities.Vehicle{
			Type:        entities.VehicleType(driverCreateDTO.Vehicle.Type),
			Fuel:        entities.FuelType(driverCreateDTO.Vehicle.Fuel),
			Plate:       driverCreateDTO.Vehicle.Plate,
			MaxWeightKg: driverCreateDTO.Vehicle.MaxWeightKg,
			MaxVolumeL:  driverCreateDTO.Vehicle.MaxVolumeL,
		}
	}

	id, err := h.service.CreateDriver(r.Context(), driverModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, driverpool.ErrMissingRequiredFields),
			errors.Is(err, driverpool.ErrInvalidName),
			errors.Is(err, driverpool.ErrInvalidPhone),
			errors.Is(err, driverpool.ErrInvalidStatus),
			errors.Is(err, driverpool.ErrInvalidVehicle),
			errors.Is(err, driverpool.ErrInvalidLocation),
			errors.Is(err, driverpool.ErrInvalidRating):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driverpool.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DriverCreateResponse{
		ID: id,
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
