//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	kafkaNotifier "marketplace/internal/gateway/kafka/notifier"
	driver_approve_post "marketplace/internal/handlers/rest/driver_approve_post"
	driver_get "marketplace/internal/handlers/rest/driver_get"
	driver_offline_post "marketplace/internal/handlers/rest/driver_offline_post"
	driver_online_post "marketplace/internal/handlers/rest/driver_online_post"
	driver_register_post "marketplace/internal/handlers/rest/driver_register_post"
	driver_reject_post "marketplace/internal/handlers/rest/driver_reject_post"
	offer_accept_post "marketplace/internal/handlers/rest/offer_accept_post"
	offer_reject_post "marketplace/internal/handlers/rest/offer_reject_post"
	offer_submit_post "marketplace/internal/handlers/rest/offer_submit_post"
	order_cancel_post "marketplace/internal/handlers/rest/order_cancel_post"
	order_claim_post "marketplace/internal/handlers/rest/order_claim_post"
	order_create_post "marketplace/internal/handlers/rest/order_create_post"
	order_get "marketplace/internal/handlers/rest/order_get"
	order_offers_get "marketplace/internal/handlers/rest/order_offers_get"
	order_status_post "marketplace/internal/handlers/rest/order_status_post"
	orders_available_get "marketplace/internal/handlers/rest/orders_available_get"
	"marketplace/internal/handlers/tasks/stale_orders"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/request_number"
	kafkaPkg "marketplace/internal/pkg/kafka"

	driverRepo "marketplace/internal/repository/driver"
	offerRepo "marketplace/internal/repository/offer"
	orderRepo "marketplace/internal/repository/order"
	assignmentService "marketplace/internal/service/assignment"
	driverService "marketplace/internal/service/driver"
	orderService "marketplace/internal/service/order"

	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	StaleWatchInterval time.Duration
	StaleThreshold     time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceAssignment ServiceAssignment
	ServiceDriver     ServiceDriver
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_create_post.Service
	order_get.Service
	orders_available_get.Service
	order_status_post.Service
	order_cancel_post.Service
}

type ServiceAssignment interface {
	order_claim_post.Service
	offer_submit_post.Service
	offer_accept_post.Service
	offer_reject_post.Service
	order_offers_get.Service
}

type ServiceDriver interface {
	driver_register_post.Service
	driver_get.Service
	driver_approve_post.Service
	driver_reject_post.Service
	driver_online_post.Service
	driver_offline_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafkaPkg.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideStaleWatchInterval,
		provideStaleThreshold,

		provideOrderRepository,
		provideOfferRepository,
		provideDriverRepository,

		request_number.New,
		provideNotifier,

		provideServiceOrder,
		provideServiceAssignment,
		provideServiceDriver,

		provideStaleOrdersTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Engine)),
		wire.Bind(new(ServiceDriver), new(*driverService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.OfferCloser), new(*offerRepo.Repository)),
		wire.Bind(new(orderService.RequestNumberFactory), new(*request_number.RequestNumberFactory)),
		wire.Bind(new(orderService.Notifier), new(*kafkaNotifier.Notifier)),

		wire.Bind(new(assignmentService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(assignmentService.OfferRepository), new(*offerRepo.Repository)),
		wire.Bind(new(assignmentService.DriverProvider), new(*driverService.Service)),
		wire.Bind(new(assignmentService.Notifier), new(*kafkaNotifier.Notifier)),

		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(stale_orders.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	DriverService *driverService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-wallet-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideDriverRepository,
		provideServiceDriver,

		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideOfferRepository(querier *querier.Querier) *offerRepo.Repository {
	return offerRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideNotifier(log logger.Logger, producer *kafkaPkg.Producer, cfg *config.Config) *kafkaNotifier.Notifier {
	return kafkaNotifier.New(log, producer, cfg.Kafka.TopicNotifications)
}

func provideServiceOrder(
	repository orderService.Repository,
	offers orderService.OfferCloser,
	numberFactory orderService.RequestNumberFactory,
	notifier orderService.Notifier,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(repository, offers, numberFactory, notifier, txManager)
}

func provideServiceAssignment(
	orders assignmentService.OrderRepository,
	offers assignmentService.OfferRepository,
	drivers assignmentService.DriverProvider,
	notifier assignmentService.Notifier,
	txManager assignmentService.TxManager,
) *assignmentService.Engine {
	return assignmentService.New(orders, offers, drivers, notifier, txManager)
}

func provideServiceDriver(
	repository driverService.Repository,
	cfg *config.Config,
) *driverService.Service {
	return driverService.New(repository, cfg.Assignment.MinWalletBalance)
}

func provideStaleWatchInterval(cfg *config.Config) StaleWatchInterval {
	return StaleWatchInterval(cfg.Tasks.StaleOrdersWatchInterval)
}

func provideStaleThreshold(cfg *config.Config) StaleThreshold {
	return StaleThreshold(cfg.Tasks.StaleOrdersThreshold)
}

func provideStaleOrdersTask(
	log logger.Logger,
	orderService stale_orders.Service,
	interval StaleWatchInterval,
	threshold StaleThreshold,
) *stale_orders.StaleOrders {
	return stale_orders.NewStaleOrders(log, orderService, time.Duration(interval), time.Duration(threshold))
}

func provideTaskList(
	staleOrdersTask *stale_orders.StaleOrders,
) []background.Task {
	return []background.Task{
		staleOrdersTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
