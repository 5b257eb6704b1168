package driver_location_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

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
	id := mux.Vars(r)["id"]

	var locationDTO dto.DriverLocationUpdate
	err := json.NewDecoder(r.Body).Decode(&locationDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverModifyEntity := entities.DriverModify{
		Location: &geo.Coordinate{
			Lat: locationDTO.Lat,
			Lon: locationDTO.Lon,
		},
	}

	driverEntity, err := h.service.UpdateLocation(r.Context(), id, driverModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, driverpool.ErrInvalidDriverID),
			errors.Is(err, driverpool.ErrMissingRequiredFields),
			errors.Is(err, driverpool.ErrInvalidLocation):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driverpool.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
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
