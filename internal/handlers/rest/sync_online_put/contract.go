//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sync_online_put_test
package sync_online_put

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
	SetOnline(ctx context.Context, online bool)
	Online() bool
	Pending(ctx context.Context) (int64, error)
}
