//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=impact_get_test
package impact_get

import (
	"context"

	"dispatch/internal/service/impact"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetCustomerImpact(ctx context.Context, customerID string) (*impact.CustomerImpact, error)
}
