package driver_offline

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

// Drivers silent for this long stop receiving new assignments.
const inactiveWindow = 15 * time.Minute

type Service interface {
	MarkInactiveOffline(ctx context.Context, inactiveFor time.Duration) (int64, error)
}

type DriverOffline struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewDriverOffline(log logger.Logger, service Service, interval time.Duration) *DriverOffline {
	return &DriverOffline{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (d *DriverOffline) TTL() time.Duration {
	return d.interval
}

func (d *DriverOffline) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	affected, err := d.service.MarkInactiveOffline(ctxWithTimeout, inactiveWindow)

	if affected > 0 {
		d.log.With(
			logger.NewField("drivers_offline", affected),
		).Info("driver offline sweep")
	}

	return err
}

func (d *DriverOffline) Info() string {
	return "driver offline sweep"
}
