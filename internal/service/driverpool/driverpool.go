package driverpool

import (
	"context"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"

	"dispatch/internal/entities"
)

type DriverPool struct {
	repository Repository
	txManager  TxManager
	locker     Locker
}

func New(repository Repository, txManager TxManager, locker Locker) *DriverPool {
	return &DriverPool{
		repository: repository,
		txManager:  txManager,
		locker:     locker,
	}
}

func (s *DriverPool) CreateDriver(ctx context.Context, driverModify entities.DriverModify) (string, error) {
	if driverModify.Name == nil || driverModify.Phone == nil {
		return "", ErrMissingRequiredFields
	}

	if !isValidName(*driverModify.Name) {
		return "", ErrInvalidName
	}
	if !isValidPhone(*driverModify.Phone) {
		return "", ErrInvalidPhone
	}
	if driverModify.Vehicle != nil && !isValidVehicle(*driverModify.Vehicle) {
		return "", ErrInvalidVehicle
	}
	if driverModify.Location != nil && driverModify.Location.Validate() != nil {
		return "", ErrInvalidLocation
	}

	driverModify.ID = pointer.ToString(uuid.NewString())
	if driverModify.Status == nil {
		status := entities.DefaultDriverStatus
		driverModify.Status = &status
	}
	if driverModify.MaxActiveOrders == nil {
		driverModify.MaxActiveOrders = pointer.ToInt(entities.DefaultMaxActiveOrders)
	}

	id, err := s.repository.Create(ctx, driverModify)
	if err != nil {
		return "", fmt.Errorf("create driver: %w", err)
	}

	return id, nil
}

func (s *DriverPool) UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.ID == nil || !isValidDriverID(*driverModify.ID) {
		return nil, ErrInvalidDriverID
	}
	if driverModify.Name == nil &&
		driverModify.Phone == nil &&
		driverModify.Status == nil &&
		driverModify.Location == nil &&
		driverModify.Vehicle == nil &&
		driverModify.Rating == nil &&
		driverModify.ActiveOrders == nil &&
		driverModify.MaxActiveOrders == nil &&
		driverModify.TotalDeliveries == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if driverModify.Name != nil && !isValidName(*driverModify.Name) {
		return nil, ErrInvalidName
	}
	if driverModify.Phone != nil && !isValidPhone(*driverModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if driverModify.Status != nil && !isValidStatus(driverModify.Status.String()) {
		return nil, ErrInvalidStatus
	}
	if driverModify.Vehicle != nil && !isValidVehicle(*driverModify.Vehicle) {
		return nil, ErrInvalidVehicle
	}
	if driverModify.Location != nil && driverModify.Location.Validate() != nil {
		return nil, ErrInvalidLocation
	}
	if driverModify.Rating != nil && !isValidRating(*driverModify.Rating) {
		return nil, ErrInvalidRating
	}

	driver, err := s.repository.Update(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	return driver, nil
}

func (s *DriverPool) GetDriver(ctx context.Context, id string) (*entities.Driver, error) {
	if !isValidDriverID(id) {
		return nil, ErrInvalidDriverID
	}

	driver, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return driver, nil
}

func (s *DriverPool) GetDrivers(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get drivers: %w", err)
	}

	return drivers, nil
}

func (s *DriverPool) UpdateLocation(ctx context.Context, id string, location entities.DriverModify) (*entities.Driver, error) {
	if !isValidDriverID(id) {
		return nil, ErrInvalidDriverID
	}
	if location.Location == nil {
		return nil, ErrMissingRequiredFields
	}
	if location.Location.Validate() != nil {
		return nil, ErrInvalidLocation
	}

	driver, err := s.repository.Update(ctx, entities.DriverModify{
		ID:       &id,
		Location: location.Location,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update driver location: %w", err)
	}
	return driver, nil
}

// Reserve takes one unit of the driver's capacity. The driver is
// re-read under the per-driver lock so a concurrent reservation cannot
// overbook: losing the race returns ErrDriverNotAvailable.
func (s *DriverPool) Reserve(ctx context.Context, id string) (*entities.Driver, error) {
	if !isValidDriverID(id) {
		return nil, ErrInvalidDriverID
	}

	var reserved *entities.Driver
	err := s.locker.WithLock(id, func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			driver, err := s.repository.GetByID(ctx, id)
			if err != nil {
				return fmt.Errorf("get driver for reservation: %w", err)
			}

			if !driver.IsAvailable() {
				return ErrDriverNotAvailable
			}

			driver.Assign()

			reserved, err = s.repository.Update(ctx, entities.DriverModify{
				ID:           &id,
				Status:       &driver.Status,
				ActiveOrders: &driver.ActiveOrders,
			})
			if err != nil {
				return fmt.Errorf("persist reservation: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return reserved, nil
}

// CompleteOrder returns one unit of capacity and credits the delivery.
func (s *DriverPool) CompleteOrder(ctx context.Context, id string) (*entities.Driver, error) {
	return s.release(ctx, id, true)
}

// ReleaseOrder returns one unit of capacity without crediting a
// delivery. Used when an assigned order is cancelled.
func (s *DriverPool) ReleaseOrder(ctx context.Context, id string) (*entities.Driver, error) {
	return s.release(ctx, id, false)
}

// MarkInactiveOffline flips drivers whose record has not been touched
// within inactiveFor to offline, keeping them out of dispatch until
// they report a location again.
func (s *DriverPool) MarkInactiveOffline(ctx context.Context, inactiveFor time.Duration) (int64, error) {
	if inactiveFor <= 0 {
		return 0, fmt.Errorf("inactivity window must be positive: %w", ErrMissingRequiredFields)
	}

	cutoff := time.Now().Add(-inactiveFor)
	affected, err := s.repository.MarkOfflineNotUpdatedSince(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("mark inactive drivers offline: %w", err)
	}

	return affected, nil
}

func (s *DriverPool) release(ctx context.Context, id string, delivered bool) (*entities.Driver, error) {
	if !isValidDriverID(id) {
		return nil, ErrInvalidDriverID
	}

	var released *entities.Driver
	err := s.locker.WithLock(id, func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			driver, err := s.repository.GetByID(ctx, id)
			if err != nil {
				return fmt.Errorf("get driver for release: %w", err)
			}

			if delivered {
				driver.Complete()
			} else {
				if driver.ActiveOrders > 0 {
					driver.ActiveOrders--
				}
				if driver.Status == entities.DriverBusy && driver.ActiveOrders < driver.MaxActiveOrders {
					driver.Status = entities.DriverAvailable
				}
			}

			released, err = s.repository.Update(ctx, entities.DriverModify{
				ID:              &id,
				Status:          &driver.Status,
				ActiveOrders:    &driver.ActiveOrders,
				TotalDeliveries: &driver.TotalDeliveries,
			})
			if err != nil {
				return fmt.Errorf("persist release: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return released, nil
}
