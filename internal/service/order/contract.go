//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
)

type Repository interface {
	Create(ctx context.Context, orderEntity *entities.Order) (string, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetAll(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
}

type DriverPoolService interface {
	GetDriver(ctx context.Context, id string) (*entities.Driver, error)
	Reserve(ctx context.Context, id string) (*entities.Driver, error)
	CompleteOrder(ctx context.Context, id string) (*entities.Driver, error)
	ReleaseOrder(ctx context.Context, id string) (*entities.Driver, error)
}

type MatcherService interface {
	CommitAssignment(ctx context.Context, orderEntity *entities.Order) (dispatch.MatchResult, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Locker interface {
	WithLock(key string, fn func() error) error
}
