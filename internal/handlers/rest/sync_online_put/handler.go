package sync_online_put

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/handlers/rest/dto"
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
	var onlineDTO dto.SyncOnlineUpdate
	err := json.NewDecoder(r.Body).Decode(&onlineDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	h.service.SetOnline(r.Context(), onlineDTO.Online)

	pending, err := h.service.Pending(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.SyncStatus{
		Online:  h.service.Online(),
		Pending: pending,
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
