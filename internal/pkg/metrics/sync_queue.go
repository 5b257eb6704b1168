package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"dispatch/internal/entities"
)

var (
	SyncItemsEnqueuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sync_items_enqueued_total",
			Help: "Total number of operations written to the sync queue",
		},
	)

	SyncItemsSyncedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sync_items_synced_total",
			Help: "Total number of queued operations replayed successfully",
		},
	)

	SyncItemsDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sync_items_dropped_total",
			Help: "Total number of queued operations dropped after exhausting retries",
		},
	)

	SyncOnline = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sync_online",
			Help: "Whether the sync queue currently considers the backend reachable (1 online, 0 offline)",
		},
	)
)

// SyncQueueListener adapts queue notifications to the Prometheus
// counters above. Subscribe it once at startup.
func SyncQueueListener() func(entities.SyncEvent) {
	SyncOnline.Set(1)

	return func(event entities.SyncEvent) {
		switch event.Type {
		case entities.SyncEventEnqueued:
			SyncItemsEnqueuedTotal.Inc()
		case entities.SyncEventSynced:
			SyncItemsSyncedTotal.Inc()
		case entities.SyncEventDropped:
			SyncItemsDroppedTotal.Inc()
		case entities.SyncEventOnline:
			SyncOnline.Set(1)
		case entities.SyncEventOffline:
			SyncOnline.Set(0)
		}
	}
}
