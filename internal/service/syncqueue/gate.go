package syncqueue

import (
	"context"
	"encoding/json"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/order"
)

// ReasonQueued marks a mutation accepted while the backend link is down.
const ReasonQueued = "queued for sync"

// Gate fronts the order and driver services with the offline queue.
// While the queue is online every call passes straight through. While
// it is offline, mutations are persisted as queue items and replayed
// by the next drain; reads always pass through.
type Gate struct {
	queue   *SyncQueue
	orders  OrderService
	drivers DriverPoolService
}

func NewGate(queue *SyncQueue, orders OrderService, drivers DriverPoolService) *Gate {
	return &Gate{
		queue:   queue,
		orders:  orders,
		drivers: drivers,
	}
}

func (g *Gate) CreateOrder(ctx context.Context, draft entities.Order) (*order.AssignmentResult, error) {
	if g.queue.Online() {
		return g.orders.CreateOrder(ctx, draft)
	}

	payload := createOrderPayload{
		CustomerID: draft.CustomerID,
		Pickup:     fromAddress(draft.Pickup),
		Dropoff:    fromAddress(draft.Dropoff),
		Package: packagePayload{
			Type:        string(draft.Package.Type),
			Description: draft.Package.Description,
			WeightKg:    draft.Package.WeightKg,
			LengthCm:    draft.Package.LengthCm,
			WidthCm:     draft.Package.WidthCm,
			HeightCm:    draft.Package.HeightCm,
			Fragile:     draft.Package.Fragile,
		},
		ScheduledFor: draft.ScheduledFor,
	}
	if err := g.enqueue(ctx, entities.SyncCreateOrder, payload); err != nil {
		return nil, err
	}

	// The order has no identity until the replay persists it. Callers
	// get the draft back so they can show what was accepted.
	draft.Status = entities.OrderPending
	return &order.AssignmentResult{
		Order:   &draft,
		Matched: false,
		Reason:  ReasonQueued,
	}, nil
}

func (g *Gate) AssignDriver(ctx context.Context, orderID string) (*order.AssignmentResult, error) {
	if g.queue.Online() {
		return g.orders.AssignDriver(ctx, orderID)
	}
	return g.queueAssignment(ctx, orderID, "")
}

func (g *Gate) AssignDriverManual(ctx context.Context, orderID, driverID string) (*order.AssignmentResult, error) {
	if g.queue.Online() {
		return g.orders.AssignDriverManual(ctx, orderID, driverID)
	}
	return g.queueAssignment(ctx, orderID, driverID)
}

func (g *Gate) queueAssignment(ctx context.Context, orderID, driverID string) (*order.AssignmentResult, error) {
	current, err := g.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	payload := assignDriverPayload{OrderID: orderID, DriverID: driverID}
	if err := g.enqueue(ctx, entities.SyncAssignDriver, payload); err != nil {
		return nil, err
	}

	return &order.AssignmentResult{
		Order:   current,
		Matched: false,
		Reason:  ReasonQueued,
	}, nil
}

func (g *Gate) UpdateStatus(ctx context.Context, orderID string, target entities.OrderStatusType) (*entities.Order, error) {
	if g.queue.Online() {
		return g.orders.UpdateStatus(ctx, orderID, target)
	}

	current, err := g.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	payload := updateStatusPayload{OrderID: orderID, Status: string(target)}
	if err := g.enqueue(ctx, entities.SyncUpdateStatus, payload); err != nil {
		return nil, err
	}
	return current, nil
}

func (g *Gate) CancelOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if g.queue.Online() {
		return g.orders.CancelOrder(ctx, orderID)
	}

	current, err := g.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := g.enqueue(ctx, entities.SyncCancelOrder, cancelOrderPayload{OrderID: orderID}); err != nil {
		return nil, err
	}
	return current, nil
}

func (g *Gate) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	return g.orders.GetOrder(ctx, id)
}

func (g *Gate) GetOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	return g.orders.GetOrders(ctx, filter)
}

func (g *Gate) CreateDriver(ctx context.Context, driverModifyEntity entities.DriverModify) (string, error) {
	return g.drivers.CreateDriver(ctx, driverModifyEntity)
}

func (g *Gate) UpdateDriver(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error) {
	return g.drivers.UpdateDriver(ctx, driverModifyEntity)
}

func (g *Gate) GetDriver(ctx context.Context, id string) (*entities.Driver, error) {
	return g.drivers.GetDriver(ctx, id)
}

func (g *Gate) GetDrivers(ctx context.Context) ([]entities.Driver, error) {
	return g.drivers.GetDrivers(ctx)
}

func (g *Gate) UpdateLocation(ctx context.Context, id string, location entities.DriverModify) (*entities.Driver, error) {
	if g.queue.Online() {
		return g.drivers.UpdateLocation(ctx, id, location)
	}

	current, err := g.drivers.GetDriver(ctx, id)
	if err != nil {
		return nil, err
	}

	if location.Location == nil {
		return g.drivers.UpdateLocation(ctx, id, location)
	}

	payload := updateLocationPayload{
		DriverID: id,
		Lat:      location.Location.Lat,
		Lon:      location.Location.Lon,
	}
	if err := g.enqueue(ctx, entities.SyncUpdateLocation, payload); err != nil {
		return nil, err
	}
	return current, nil
}

func (g *Gate) enqueue(ctx context.Context, opType entities.SyncOperationType, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", opType, err)
	}
	if _, err := g.queue.Enqueue(ctx, opType, raw); err != nil {
		return fmt.Errorf("enqueue %s: %w", opType, err)
	}
	return nil
}

func fromAddress(address entities.Address) addressPayload {
	return addressPayload{
		Street:  address.Street,
		Commune: address.Commune,
		Region:  address.Region,
		Lat:     address.Coordinate.Lat,
		Lon:     address.Coordinate.Lon,
	}
}
