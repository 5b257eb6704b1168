package impact_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/service/impact"
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
	customerID := mux.Vars(r)["id"]

	customerImpact, err := h.service.GetCustomerImpact(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, impact.ErrInvalidCustomerID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	impactDTO := dto.CustomerImpact{
		TotalOrders:     customerImpact.TotalOrders,
		TotalDistanceKm: customerImpact.TotalDistanceKm,
		ElectricKm:      customerImpact.ElectricKm,
		CO2SavedKg:      customerImpact.CO2SavedKg,
		TreesEquivalent: customerImpact.TreesEquivalent,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(impactDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
