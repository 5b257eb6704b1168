package syncqueue

import (
	"encoding/json"
	"time"
)

type SyncItemDB struct {
	ID        int64
	Type      string
	Payload   json.RawMessage
	Retries   int
	CreatedAt time.Time
}
