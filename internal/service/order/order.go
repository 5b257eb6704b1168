package order

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"dispatch/internal/entities"
	"dispatch/pkg/geo"
)

type OrderLifecycle struct {
	repository Repository
	driverPool DriverPoolService
	matcher    MatcherService
	events     EventPublisher
	txManager  TxManager
	locker     Locker
}

func New(
	repository Repository,
	driverPool DriverPoolService,
	matcher MatcherService,
	events EventPublisher,
	txManager TxManager,
	locker Locker,
) *OrderLifecycle {
	return &OrderLifecycle{
		repository: repository,
		driverPool: driverPool,
		matcher:    matcher,
		events:     events,
		txManager:  txManager,
		locker:     locker,
	}
}

// AssignmentResult reports the dispatch outcome alongside the order.
// An unmatched order stays pending with the reason filled in.
type AssignmentResult struct {
	Order      *entities.Order
	Matched    bool
	Reason     string
	DistanceKm float64
}

// CreateOrder prices and persists a new pending order, then tries an
// automatic dispatch. The order is returned regardless of the dispatch
// outcome.
func (s *OrderLifecycle) CreateOrder(ctx context.Context, draft entities.Order) (*AssignmentResult, error) {
	if !isValidCustomerID(draft.CustomerID) {
		return nil, ErrInvalidCustomerID
	}
	if !isValidAddress(draft.Pickup) || !isValidAddress(draft.Dropoff) {
		return nil, ErrInvalidAddress
	}
	if draft.Package.Type == "" {
		draft.Package.Type = entities.PackageStandard
	}
	if !isValidPackage(draft.Package) {
		return nil, ErrInvalidPackage
	}
	if draft.Package.Type == entities.PackageFragile {
		draft.Package.Fragile = true
	}

	distance, err := geo.DistanceBetween(draft.Pickup.Coordinate, draft.Dropoff.Coordinate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.TrackingNumber = entities.TrackingNumber(strconv.FormatInt(now.UnixMilli(), 10))
	draft.Status = entities.OrderPending
	draft.DistanceKm = distance
	draft.Cost = entities.CalculateCost(distance, draft.Package.WeightKg, draft.Package.Fragile)
	draft.CreatedAt = now
	draft.UpdatedAt = now

	if _, err := s.repository.Create(ctx, &draft); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.publish(ctx, entities.OrderEvent{
		Type:       entities.OrderEventCreated,
		Order:      draft,
		OccurredAt: now,
	})

	// Dispatch is best effort at creation time. A failed match leaves
	// the order pending with the reason attached and subscribers are
	// told why no driver took it.
	assignment, err := s.AssignDriver(ctx, draft.ID)
	if err != nil {
		s.publishPendingAssignment(ctx, draft, err.Error())
		return &AssignmentResult{Order: &draft, Reason: err.Error()}, nil
	}
	if !assignment.Matched {
		s.publishPendingAssignment(ctx, *assignment.Order, assignment.Reason)
	}
	return assignment, nil
}

func (s *OrderLifecycle) publishPendingAssignment(ctx context.Context, orderEntity entities.Order, reason string) {
	method := entities.AssignmentPending
	s.publish(ctx, entities.OrderEvent{
		Type:       entities.OrderEventAssigned,
		Order:      orderEntity,
		Method:     &method,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	})
}

// AssignDriver runs automatic dispatch for a pending order.
func (s *OrderLifecycle) AssignDriver(ctx context.Context, orderID string) (*AssignmentResult, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var result *AssignmentResult
	err := s.locker.WithLock(orderID, func() error {
		orderEntity, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order for assignment: %w", err)
		}
		if orderEntity.Status != entities.OrderPending {
			return ErrAlreadyAssigned
		}

		match, err := s.matcher.CommitAssignment(ctx, orderEntity)
		if err != nil {
			return err
		}
		if !match.Matched {
			result = &AssignmentResult{Order: orderEntity, Reason: match.Reason}
			return nil
		}

		updated, err := s.applyAssignment(ctx, orderEntity, match.Driver, entities.AssignmentAuto)
		if err != nil {
			// The reservation already happened; give the capacity back.
			if _, releaseErr := s.driverPool.ReleaseOrder(ctx, match.Driver.ID); releaseErr != nil {
				return fmt.Errorf("%w (release after failure: %w)", err, releaseErr)
			}
			return err
		}

		result = &AssignmentResult{
			Order:      updated,
			Matched:    true,
			Reason:     match.Reason,
			DistanceKm: match.DistanceKm,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AssignDriverManual assigns a specific driver chosen by a dispatcher.
func (s *OrderLifecycle) AssignDriverManual(ctx context.Context, orderID, driverID string) (*AssignmentResult, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var result *AssignmentResult
	err := s.locker.WithLock(orderID, func() error {
		orderEntity, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order for assignment: %w", err)
		}
		if orderEntity.Status != entities.OrderPending {
			return ErrAlreadyAssigned
		}

		driver, err := s.driverPool.Reserve(ctx, driverID)
		if err != nil {
			return fmt.Errorf("reserve driver %s: %w", driverID, err)
		}

		updated, err := s.applyAssignment(ctx, orderEntity, driver, entities.AssignmentManual)
		if err != nil {
			if _, releaseErr := s.driverPool.ReleaseOrder(ctx, driver.ID); releaseErr != nil {
				return fmt.Errorf("%w (release after failure: %w)", err, releaseErr)
			}
			return err
		}

		distance := 0.0
		if driver.Location != nil {
			if d, derr := geo.DistanceBetween(*driver.Location, orderEntity.Pickup.Coordinate); derr == nil {
				distance = d
			}
		}

		result = &AssignmentResult{
			Order:      updated,
			Matched:    true,
			Reason:     "assigned manually",
			DistanceKm: distance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *OrderLifecycle) applyAssignment(
	ctx context.Context,
	orderEntity *entities.Order,
	driver *entities.Driver,
	method entities.AssignmentMethodType,
) (*entities.Order, error) {
	now := time.Now().UTC()
	previous := orderEntity.Status
	status := entities.OrderAssigned

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var txErr error
		updated, txErr = s.repository.Update(ctx, entities.OrderModify{
			ID:               &orderEntity.ID,
			Status:           &status,
			DriverID:         &driver.ID,
			DriverName:       &driver.Name,
			AssignmentMethod: &method,
			AssignedAt:       &now,
		})
		if txErr != nil {
			return fmt.Errorf("persist assignment: %w", txErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, entities.OrderEvent{
		Type:           entities.OrderEventAssigned,
		Order:          *updated,
		PreviousStatus: &previous,
		Method:         &method,
		OccurredAt:     now,
	})
	return updated, nil
}

// UpdateStatus moves an order forward through its lifecycle. Applying
// the current status again is a no-op success, which makes replays from
// the sync queue safe.
func (s *OrderLifecycle) UpdateStatus(ctx context.Context, orderID string, target entities.OrderStatusType) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidStatus(target.String()) {
		return nil, ErrInvalidStatus
	}
	if target == entities.OrderCancelled {
		return s.CancelOrder(ctx, orderID)
	}

	var updated *entities.Order
	err := s.locker.WithLock(orderID, func() error {
		orderEntity, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order for status update: %w", err)
		}

		if orderEntity.Status == target {
			updated = orderEntity
			return nil
		}
		if !orderEntity.CanTransition(target) {
			return fmt.Errorf("%s -> %s: %w", orderEntity.Status, target, ErrInvalidTransition)
		}

		now := time.Now().UTC()
		previous := orderEntity.Status
		orderEntity.SetStatus(target, now)

		err = s.txManager.Do(ctx, func(ctx context.Context) error {
			var txErr error
			updated, txErr = s.repository.Update(ctx, statusModify(orderEntity, target, now))
			if txErr != nil {
				return fmt.Errorf("persist status: %w", txErr)
			}

			if target == entities.OrderDelivered && orderEntity.DriverID != nil {
				if _, txErr = s.driverPool.CompleteOrder(ctx, *orderEntity.DriverID); txErr != nil {
					return fmt.Errorf("complete driver order: %w", txErr)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		s.publish(ctx, entities.OrderEvent{
			Type:           entities.OrderEventStatusChanged,
			Order:          *updated,
			PreviousStatus: &previous,
			OccurredAt:     now,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CancelOrder cancels from any non-delivered status and frees the
// driver without crediting a delivery. Cancelling twice is a no-op.
func (s *OrderLifecycle) CancelOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var updated *entities.Order
	err := s.locker.WithLock(orderID, func() error {
		orderEntity, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order for cancellation: %w", err)
		}

		if orderEntity.Status == entities.OrderCancelled {
			updated = orderEntity
			return nil
		}
		if orderEntity.Status == entities.OrderDelivered {
			return ErrAlreadyDelivered
		}

		now := time.Now().UTC()
		previous := orderEntity.Status
		status := entities.OrderCancelled

		err = s.txManager.Do(ctx, func(ctx context.Context) error {
			var txErr error
			updated, txErr = s.repository.Update(ctx, entities.OrderModify{
				ID:          &orderEntity.ID,
				Status:      &status,
				CancelledAt: &now,
			})
			if txErr != nil {
				return fmt.Errorf("persist cancellation: %w", txErr)
			}

			if orderEntity.DriverID != nil {
				if _, txErr = s.driverPool.ReleaseOrder(ctx, *orderEntity.DriverID); txErr != nil {
					return fmt.Errorf("release driver: %w", txErr)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		s.publish(ctx, entities.OrderEvent{
			Type:           entities.OrderEventCancelled,
			Order:          *updated,
			PreviousStatus: &previous,
			OccurredAt:     now,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *OrderLifecycle) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	if !isValidOrderID(id) {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return orderEntity, nil
}

func (s *OrderLifecycle) GetOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.Status != nil && !isValidStatus(filter.Status.String()) {
		return nil, ErrInvalidStatus
	}

	orders, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

func statusModify(orderEntity *entities.Order, target entities.OrderStatusType, at time.Time) entities.OrderModify {
	modify := entities.OrderModify{
		ID:     &orderEntity.ID,
		Status: &target,
	}
	switch target {
	case entities.OrderPickedUp:
		modify.PickedUpAt = &at
	case entities.OrderInTransit:
		modify.InTransitAt = &at
	case entities.OrderDelivered:
		modify.DeliveredAt = &at
	}
	return modify
}

// publish is best effort. The gateway logs and counts failures; a lost
// event never fails the originating operation.
func (s *OrderLifecycle) publish(ctx context.Context, event entities.OrderEvent) {
	_ = s.events.Publish(ctx, event)
}
