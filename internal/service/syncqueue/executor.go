package syncqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/geo"
)

// OperationExecutor replays queued items against the domain services.
// Lifecycle calls are idempotent, so a replay that already happened is
// a no-op success.
type OperationExecutor struct {
	orders  OrderService
	drivers DriverPoolService
}

func NewOperationExecutor(orders OrderService, drivers DriverPoolService) *OperationExecutor {
	return &OperationExecutor{
		orders:  orders,
		drivers: drivers,
	}
}

type addressPayload struct {
	Street  string  `json:"street"`
	Commune string  `json:"commune"`
	Region  string  `json:"region,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type packagePayload struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	WeightKg    float64 `json:"weight_kg"`
	LengthCm    float64 `json:"length_cm"`
	WidthCm     float64 `json:"width_cm"`
	HeightCm    float64 `json:"height_cm"`
	Fragile     bool    `json:"fragile"`
}

type createOrderPayload struct {
	CustomerID   string         `json:"customer_id"`
	Pickup       addressPayload `json:"pickup"`
	Dropoff      addressPayload `json:"dropoff"`
	Package      packagePayload `json:"package"`
	ScheduledFor *time.Time     `json:"scheduled_for,omitempty"`
}

type assignDriverPayload struct {
	OrderID  string `json:"order_id"`
	DriverID string `json:"driver_id,omitempty"`
}

type updateStatusPayload struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type cancelOrderPayload struct {
	OrderID string `json:"order_id"`
}

type updateLocationPayload struct {
	DriverID string  `json:"driver_id"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

func (e *OperationExecutor) Execute(ctx context.Context, item entities.SyncItem) error {
	switch item.Type {
	case entities.SyncCreateOrder:
		return e.createOrder(ctx, item.Payload)
	case entities.SyncAssignDriver:
		return e.assignDriver(ctx, item.Payload)
	case entities.SyncUpdateStatus:
		return e.updateStatus(ctx, item.Payload)
	case entities.SyncCancelOrder:
		return e.cancelOrder(ctx, item.Payload)
	case entities.SyncUpdateLocation:
		return e.updateLocation(ctx, item.Payload)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidOperationType, item.Type)
	}
}

func (e *OperationExecutor) createOrder(ctx context.Context, raw json.RawMessage) error {
	var payload createOrderPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("decode create_order payload: %w", err)
	}

	draft := entities.Order{
		CustomerID: payload.CustomerID,
		Pickup:     toAddress(payload.Pickup),
		Dropoff:    toAddress(payload.Dropoff),
		Package: entities.Package{
			Type:        entities.PackageType(payload.Package.Type),
			Description: payload.Package.Description,
			WeightKg:    payload.Package.WeightKg,
			LengthCm:    payload.Package.LengthCm,
			WidthCm:     payload.Package.WidthCm,
			HeightCm:    payload.Package.HeightCm,
			Fragile:     payload.Package.Fragile,
		},
		ScheduledFor: payload.ScheduledFor,
	}

	if _, err := e.orders.CreateOrder(ctx, draft); err != nil {
		return fmt.Errorf("replay create_order: %w", err)
	}
	return nil
}

func (e *OperationExecutor) assignDriver(ctx context.Context, raw json.RawMessage) error {
	var payload assignDriverPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("decode assign_driver payload: %w", err)
	}

	var err error
	if payload.DriverID != "" {
		_, err = e.orders.AssignDriverManual(ctx, payload.OrderID, payload.DriverID)
	} else {
		_, err = e.orders.AssignDriver(ctx, payload.OrderID)
	}
	if err != nil {
		return fmt.Errorf("replay assign_driver: %w", err)
	}
	return nil
}

func (e *OperationExecutor) updateStatus(ctx context.Context, raw json.RawMessage) error {
	var payload updateStatusPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("decode update_status payload: %w", err)
	}

	if _, err := e.orders.UpdateStatus(ctx, payload.OrderID, entities.OrderStatusType(payload.Status)); err != nil {
		return fmt.Errorf("replay update_status: %w", err)
	}
	return nil
}

func (e *OperationExecutor) cancelOrder(ctx context.Context, raw json.RawMessage) error {
	var payload cancelOrderPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("decode cancel_order payload: %w", err)
	}

	if _, err := e.orders.CancelOrder(ctx, payload.OrderID); err != nil {
		return fmt.Errorf("replay cancel_order: %w", err)
	}
	return nil
}

func (e *OperationExecutor) updateLocation(ctx context.Context, raw json.RawMessage) error {
	var payload updateLocationPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("decode update_location payload: %w", err)
	}

	_, err := e.drivers.UpdateLocation(ctx, payload.DriverID, entities.DriverModify{
		Location: &geo.Coordinate{Lat: payload.Lat, Lon: payload.Lon},
	})
	if err != nil {
		return fmt.Errorf("replay update_location: %w", err)
	}
	return nil
}

func toAddress(payload addressPayload) entities.Address {
	return entities.Address{
		Street:     payload.Street,
		Commune:    payload.Commune,
		Region:     payload.Region,
		Coordinate: geo.Coordinate{Lat: payload.Lat, Lon: payload.Lon},
	}
}
