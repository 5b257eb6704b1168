package order_events

import (
	"context"
	"net/http"

	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Sender forwards one event payload to the customer facing endpoint.
type Sender interface {
	Send(ctx context.Context, payload []byte) error
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}
