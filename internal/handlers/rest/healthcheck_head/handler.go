package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler reports readiness. Once shutdown starts it answers 503 so the
// load balancer stops routing new work here while in-flight requests drain.
type Handler struct {
	shuttingDown *atomic.Bool
}

func New(shuttingDown *atomic.Bool) *Handler {
	return &Handler{shuttingDown: shuttingDown}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	if h.shuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
