//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driverpool_test
package driverpool

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, driverModifyEntity entities.DriverModify) (string, error)
	GetByID(ctx context.Context, id string) (*entities.Driver, error)
	GetAll(ctx context.Context) ([]entities.Driver, error)
	Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error)
	MarkOfflineNotUpdatedSince(ctx context.Context, cutoff time.Time) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Locker interface {
	WithLock(key string, fn func() error) error
}
