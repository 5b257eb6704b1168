//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=syncqueue_test
package syncqueue

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/internal/service/order"
	"dispatch/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, item entities.SyncItem) (int64, error)
	GetOldest(ctx context.Context, limit int) ([]entities.SyncItem, error)
	Delete(ctx context.Context, id int64) error
	IncrementRetries(ctx context.Context, id int64) (int, error)
	Count(ctx context.Context) (int64, error)
}

// Executor replays one queued item against the backend services.
// Implementations must be idempotent: drains deliver at least once.
type Executor interface {
	Execute(ctx context.Context, item entities.SyncItem) error
}

type OrderService interface {
	CreateOrder(ctx context.Context, draft entities.Order) (*order.AssignmentResult, error)
	AssignDriver(ctx context.Context, orderID string) (*order.AssignmentResult, error)
	AssignDriverManual(ctx context.Context, orderID, driverID string) (*order.AssignmentResult, error)
	UpdateStatus(ctx context.Context, orderID string, target entities.OrderStatusType) (*entities.Order, error)
	CancelOrder(ctx context.Context, orderID string) (*entities.Order, error)
	GetOrder(ctx context.Context, id string) (*entities.Order, error)
	GetOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
}

type DriverPoolService interface {
	CreateDriver(ctx context.Context, driverModifyEntity entities.DriverModify) (string, error)
	UpdateDriver(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error)
	GetDriver(ctx context.Context, id string) (*entities.Driver, error)
	GetDrivers(ctx context.Context) ([]entities.Driver, error)
	UpdateLocation(ctx context.Context, id string, location entities.DriverModify) (*entities.Driver, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
