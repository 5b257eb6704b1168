package syncqueue

import "errors"

var (
	ErrInvalidOperationType = errors.New("invalid sync operation type")
	ErrEmptyPayload         = errors.New("empty sync payload")
)
