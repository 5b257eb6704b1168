package syncqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

const drainBatchSize = 50

// Listener receives queue lifecycle notifications. Callbacks run on the
// draining goroutine and must not block.
type Listener func(event entities.SyncEvent)

// SyncQueue is a durable FIFO of operations accepted while the backend
// was unreachable. Drains are single-flight; concurrent calls are
// no-ops. Replay failures never propagate to the caller who enqueued.
type SyncQueue struct {
	repository Repository
	executor   Executor
	log        handlerLogger

	online   atomic.Bool
	draining atomic.Bool

	mu        sync.RWMutex
	listeners []Listener
}

func New(repository Repository, executor Executor, log handlerLogger) *SyncQueue {
	q := &SyncQueue{
		repository: repository,
		executor:   executor,
		log:        log,
	}
	q.online.Store(true)
	return q
}

// Enqueue persists an operation for later replay. When the queue is
// online an asynchronous drain is kicked off immediately.
func (q *SyncQueue) Enqueue(ctx context.Context, opType entities.SyncOperationType, payload json.RawMessage) (*entities.SyncItem, error) {
	switch opType {
	case entities.SyncCreateOrder, entities.SyncAssignDriver, entities.SyncUpdateStatus,
		entities.SyncCancelOrder, entities.SyncUpdateLocation:
	default:
		return nil, ErrInvalidOperationType
	}
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}

	item := entities.SyncItem{
		Type:      opType,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}

	id, err := q.repository.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("enqueue sync item: %w", err)
	}
	item.ID = id

	q.notify(entities.SyncEvent{Type: entities.SyncEventEnqueued, Item: &item})

	if q.online.Load() {
		go q.drainAsync(context.WithoutCancel(ctx))
	}

	return &item, nil
}

// Drain replays queued items oldest first. A second concurrent call
// returns immediately. A failing item stays in place with its retry
// count bumped; once the count reaches the cap the item is dropped,
// logged, and reported to listeners.
func (q *SyncQueue) Drain(ctx context.Context) error {
	if !q.draining.CompareAndSwap(false, true) {
		return nil
	}
	defer q.draining.Store(false)

	if !q.online.Load() {
		return nil
	}

	// One attempt per item per drain. A failing item keeps its place
	// in the queue and waits for the next drain, so one pass never
	// burns through an item's whole retry budget.
	attempted := make(map[int64]struct{})

	for {
		items, err := q.repository.GetOldest(ctx, drainBatchSize)
		if err != nil {
			return fmt.Errorf("read sync batch: %w", err)
		}

		progressed := false
		for i := range items {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, seen := attempted[items[i].ID]; seen {
				continue
			}
			attempted[items[i].ID] = struct{}{}
			if q.drainItem(ctx, &items[i]) {
				progressed = true
			}
		}
		if !progressed {
			return nil
		}
	}
}

// drainItem reports whether the item left the queue.
func (q *SyncQueue) drainItem(ctx context.Context, item *entities.SyncItem) bool {
	execErr := q.executor.Execute(ctx, *item)
	if execErr == nil {
		if err := q.repository.Delete(ctx, item.ID); err != nil {
			q.log.Error("Failed to delete synced item",
				logger.NewField("item_id", item.ID),
				logger.NewField("error", err),
			)
			return false
		}
		q.notify(entities.SyncEvent{Type: entities.SyncEventSynced, Item: item})
		return true
	}

	retries, err := q.repository.IncrementRetries(ctx, item.ID)
	if err != nil {
		q.log.Error("Failed to bump sync retries",
			logger.NewField("item_id", item.ID),
			logger.NewField("error", err),
		)
		return false
	}
	item.Retries = retries

	if retries < entities.SyncMaxRetries {
		return false
	}

	if err := q.repository.Delete(ctx, item.ID); err != nil {
		q.log.Error("Failed to drop exhausted sync item",
			logger.NewField("item_id", item.ID),
			logger.NewField("error", err),
		)
		return false
	}

	q.log.Error("Sync item dropped after max retries",
		logger.NewField("item_id", item.ID),
		logger.NewField("type", item.Type.String()),
		logger.NewField("retries", retries),
		logger.NewField("error", execErr),
	)
	q.notify(entities.SyncEvent{Type: entities.SyncEventDropped, Item: item, Err: execErr})
	return true
}

// SetOnline flips connectivity. Coming back online triggers a drain.
func (q *SyncQueue) SetOnline(ctx context.Context, online bool) {
	previous := q.online.Swap(online)
	if previous == online {
		return
	}

	if online {
		q.notify(entities.SyncEvent{Type: entities.SyncEventOnline})
		go q.drainAsync(context.WithoutCancel(ctx))
		return
	}
	q.notify(entities.SyncEvent{Type: entities.SyncEventOffline})
}

func (q *SyncQueue) Online() bool {
	return q.online.Load()
}

// Pending returns the current queue depth.
func (q *SyncQueue) Pending(ctx context.Context) (int64, error) {
	count, err := q.repository.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count sync items: %w", err)
	}
	return count, nil
}

// Subscribe registers a listener for queue events.
func (q *SyncQueue) Subscribe(listener Listener) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.listeners = append(q.listeners, listener)
}

func (q *SyncQueue) notify(event entities.SyncEvent) {
	q.mu.RLock()
	listeners := make([]Listener, len(q.listeners))
	copy(listeners, q.listeners)
	q.mu.RUnlock()

	for _, listener := range listeners {
		listener(event)
	}
}

func (q *SyncQueue) drainAsync(ctx context.Context) {
	if err := q.Drain(ctx); err != nil {
		q.log.Error("Background drain failed",
			logger.NewField("error", err),
		)
	}
}
