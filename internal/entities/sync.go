package entities

import (
	"encoding/json"
	"time"
)

// SyncItem is one queued operation waiting to be replayed against the
// backend. Items are drained strictly in enqueue order.
type SyncItem struct {
	ID        int64
	Type      SyncOperationType
	Payload   json.RawMessage
	Retries   int
	CreatedAt time.Time
}

type SyncOperationType string

const (
	SyncCreateOrder    SyncOperationType = "create_order"
	SyncAssignDriver   SyncOperationType = "assign_driver"
	SyncUpdateStatus   SyncOperationType = "update_status"
	SyncCancelOrder    SyncOperationType = "cancel_order"
	SyncUpdateLocation SyncOperationType = "update_location"
)

func (t SyncOperationType) String() string {
	return string(t)
}

// SyncMaxRetries is how many failed replays an item survives before it
// is dropped and reported.
const SyncMaxRetries = 3

type SyncEventType string

const (
	SyncEventEnqueued SyncEventType = "enqueued"
	SyncEventSynced   SyncEventType = "synced"
	SyncEventDropped  SyncEventType = "dropped"
	SyncEventOnline   SyncEventType = "online"
	SyncEventOffline  SyncEventType = "offline"
)

// SyncEvent notifies listeners about queue state changes.
type SyncEvent struct {
	Type SyncEventType
	Item *SyncItem
	Err  error
}
