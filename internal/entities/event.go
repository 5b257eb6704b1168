package entities

import "time"

type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventAssigned      OrderEventType = "order.assigned"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
	OrderEventCancelled     OrderEventType = "order.cancelled"
)

func (t OrderEventType) String() string {
	return string(t)
}

// OrderEvent is published to the order events topic on every lifecycle
// change and consumed by the webhook worker. Order is a full snapshot
// taken after the change was persisted, so subscribers never have to
// fetch the order themselves. PreviousStatus, Method and Reason
// describe the change itself.
type OrderEvent struct {
	Type           OrderEventType
	Order          Order
	PreviousStatus *OrderStatusType
	Method         *AssignmentMethodType
	Reason         string
	OccurredAt     time.Time
}
