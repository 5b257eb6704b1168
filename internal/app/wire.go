//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	orderEventsGateway "dispatch/internal/gateway/kafka/orderevents"
	"dispatch/internal/handlers/rest/driver_get"
	"dispatch/internal/handlers/rest/driver_location_put"
	"dispatch/internal/handlers/rest/driver_post"
	"dispatch/internal/handlers/rest/driver_put"
	"dispatch/internal/handlers/rest/drivers_get"
	"dispatch/internal/handlers/rest/impact_get"
	"dispatch/internal/handlers/rest/order_assign_post"
	"dispatch/internal/handlers/rest/order_cancel_post"
	"dispatch/internal/handlers/rest/order_get"
	"dispatch/internal/handlers/rest/order_post"
	"dispatch/internal/handlers/rest/order_status_put"
	"dispatch/internal/handlers/rest/orders_get"
	"dispatch/internal/handlers/rest/sync_online_put"
	"dispatch/internal/handlers/rest/sync_status_get"
	"dispatch/internal/handlers/tasks/driver_offline"
	"dispatch/internal/handlers/tasks/sync_drain"
	"dispatch/internal/pkg/config"

	driverRepo "dispatch/internal/repository/driver"
	orderRepo "dispatch/internal/repository/order"
	syncRepo "dispatch/internal/repository/syncqueue"
	dispatchService "dispatch/internal/service/dispatch"
	driverPoolService "dispatch/internal/service/driverpool"
	impactService "dispatch/internal/service/impact"
	orderService "dispatch/internal/service/order"
	syncQueueService "dispatch/internal/service/syncqueue"

	"dispatch/pkg/background"
	"dispatch/pkg/locker"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	SyncDrainInterval     time.Duration
	DriverOfflineInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceDriverPool ServiceDriverPool
	ServiceImpact     ServiceImpact
	ServiceSync       ServiceSync
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	orders_get.Service
	order_status_put.Service
	order_assign_post.Service
	order_cancel_post.Service
}

type ServiceDriverPool interface {
	driver_post.Service
	driver_get.Service
	driver_put.Service
	drivers_get.Service
	driver_location_put.Service
}

type ServiceImpact interface {
	impact_get.Service
}

type ServiceSync interface {
	sync_status_get.Service
	sync_online_put.Service
	Subscribe(listener syncQueueService.Listener)
}

// InitializeApplication builds the object graph for the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideLocker,
		provideSyncDrainInterval,
		provideDriverOfflineInterval,

		provideDriverRepository,
		provideOrderRepository,
		provideSyncRepository,

		provideServiceDriverPool,
		dispatchService.New,
		provideOrderEventsGateway,
		provideServiceOrder,
		provideServiceImpact,
		provideOperationExecutor,
		provideSyncQueue,
		provideSyncGate,

		provideSyncDrainTask,
		provideDriverOfflineTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*syncQueueService.Gate)),
		wire.Bind(new(ServiceDriverPool), new(*syncQueueService.Gate)),
		wire.Bind(new(ServiceImpact), new(*impactService.Impact)),
		wire.Bind(new(ServiceSync), new(*syncQueueService.SyncQueue)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.DriverPoolService), new(*driverPoolService.DriverPool)),
		wire.Bind(new(orderService.MatcherService), new(*dispatchService.Matcher)),
		wire.Bind(new(orderService.EventPublisher), new(*orderEventsGateway.Gateway)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(orderService.Locker), new(*locker.KeyedMutex)),

		wire.Bind(new(driverPoolService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(driverPoolService.TxManager), new(*tx.Manager)),
		wire.Bind(new(driverPoolService.Locker), new(*locker.KeyedMutex)),

		wire.Bind(new(dispatchService.DriverPoolService), new(*driverPoolService.DriverPool)),

		wire.Bind(new(impactService.OrderRepository), new(*orderRepo.Repository)),

		wire.Bind(new(syncQueueService.Repository), new(*syncRepo.Repository)),
		wire.Bind(new(syncQueueService.Executor), new(*syncQueueService.OperationExecutor)),
		wire.Bind(new(syncQueueService.OrderService), new(*orderService.OrderLifecycle)),
		wire.Bind(new(syncQueueService.DriverPoolService), new(*driverPoolService.DriverPool)),

		wire.Bind(new(driverRepo.Querier), new(*querier.Querier)),
		wire.Bind(new(orderRepo.Querier), new(*querier.Querier)),
		wire.Bind(new(syncRepo.Querier), new(*querier.Querier)),

		wire.Bind(new(sync_drain.Service), new(*syncQueueService.SyncQueue)),
		wire.Bind(new(driver_offline.Service), new(*driverPoolService.DriverPool)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideLocker() *locker.KeyedMutex {
	return locker.New()
}

func provideDriverRepository(querier driverRepo.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideOrderRepository(querier orderRepo.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideSyncRepository(querier syncRepo.Querier) *syncRepo.Repository {
	return syncRepo.New(querier)
}

func provideServiceDriverPool(
	repository driverPoolService.Repository,
	txManager driverPoolService.TxManager,
	keyedLocker driverPoolService.Locker,
) *driverPoolService.DriverPool {
	return driverPoolService.New(repository, txManager, keyedLocker)
}

func provideOrderEventsGateway(
	log logger.Logger,
	producer sarama.SyncProducer,
	cfg *config.Config,
) *orderEventsGateway.Gateway {
	return orderEventsGateway.New(producer, cfg.Kafka.Topic, log)
}

func provideServiceOrder(
	repository orderService.Repository,
	driverPool orderService.DriverPoolService,
	matcher orderService.MatcherService,
	events orderService.EventPublisher,
	txManager orderService.TxManager,
	keyedLocker orderService.Locker,
) *orderService.OrderLifecycle {
	return orderService.New(repository, driverPool, matcher, events, txManager, keyedLocker)
}

func provideServiceImpact(orders impactService.OrderRepository) *impactService.Impact {
	return impactService.New(orders)
}

func provideOperationExecutor(
	orders syncQueueService.OrderService,
	drivers syncQueueService.DriverPoolService,
) *syncQueueService.OperationExecutor {
	return syncQueueService.NewOperationExecutor(orders, drivers)
}

func provideSyncQueue(
	repository syncQueueService.Repository,
	executor syncQueueService.Executor,
	log logger.Logger,
) *syncQueueService.SyncQueue {
	return syncQueueService.New(repository, executor, log)
}

func provideSyncGate(
	queue *syncQueueService.SyncQueue,
	orders syncQueueService.OrderService,
	drivers syncQueueService.DriverPoolService,
) *syncQueueService.Gate {
	return syncQueueService.NewGate(queue, orders, drivers)
}

func provideSyncDrainInterval(cfg *config.Config) SyncDrainInterval {
	return SyncDrainInterval(cfg.Tasks.SyncDrainInterval)
}

func provideDriverOfflineInterval(cfg *config.Config) DriverOfflineInterval {
	return DriverOfflineInterval(cfg.Tasks.DriverOfflineInterval)
}

func provideSyncDrainTask(
	log logger.Logger,
	service sync_drain.Service,
	interval SyncDrainInterval,
) *sync_drain.SyncDrain {
	return sync_drain.NewSyncDrain(log, service, time.Duration(interval))
}

func provideDriverOfflineTask(
	log logger.Logger,
	service driver_offline.Service,
	interval DriverOfflineInterval,
) *driver_offline.DriverOffline {
	return driver_offline.NewDriverOffline(log, service, time.Duration(interval))
}

func provideTaskList(
	syncDrainTask *sync_drain.SyncDrain,
	driverOfflineTask *driver_offline.DriverOffline,
) []background.Task {
	return []background.Task{syncDrainTask, driverOfflineTask}
}

func provideBackgroundWorkers(
	ctx context.Context,
	log logger.Logger,
	tasks []background.Task,
) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
