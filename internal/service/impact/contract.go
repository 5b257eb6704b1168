//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=impact_test
package impact

import (
	"context"

	"dispatch/internal/entities"
)

type OrderRepository interface {
	GetAll(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
}
