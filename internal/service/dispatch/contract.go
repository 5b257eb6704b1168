//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"

	"dispatch/internal/entities"
)

type DriverPoolService interface {
	GetDrivers(ctx context.Context) ([]entities.Driver, error)
	Reserve(ctx context.Context, id string) (*entities.Driver, error)
}
