//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sync_status_get_test
package sync_status_get

import (
	"context"

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
	Online() bool
	Pending(ctx context.Context) (int64, error)
}
