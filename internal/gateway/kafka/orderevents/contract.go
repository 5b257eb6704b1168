//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderevents_test
package orderevents

import (
	"github.com/IBM/sarama"

	"dispatch/pkg/logger"
)

type producer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
