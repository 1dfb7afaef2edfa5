//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"orders/internal/gateway/grpc/permission"
	"orders/internal/handlers/rest/order_cancel_post"
	"orders/internal/handlers/rest/order_delete"
	"orders/internal/handlers/rest/order_get"
	"orders/internal/handlers/rest/order_logs_get"
	"orders/internal/handlers/rest/order_product_put"
	"orders/internal/handlers/rest/order_put"
	"orders/internal/handlers/rest/order_status_put"
	"orders/internal/handlers/rest/order_statuses_get"
	"orders/internal/handlers/tasks/messages_refresh"
	"orders/internal/handlers/tasks/order_status_metrics"
	"orders/internal/pkg/config"
	"orders/internal/pkg/factory/order_status"
	"orders/internal/pkg/messages"
	"orders/internal/pkg/metrics"

	messageRepo "orders/internal/repository/message"
	orderRepo "orders/internal/repository/order"
	orderLogRepo "orders/internal/repository/order_log"
	orderProductRepo "orders/internal/repository/order_product"
	orderStatusRepo "orders/internal/repository/order_status"
	orderService "orders/internal/service/order"

	"orders/pkg/background"
	"orders/pkg/logger"
	"orders/pkg/querier"
	retrierconfig "orders/pkg/retrier"
	"orders/pkg/retrier/backoff_adapter"
	"orders/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

const (
	txRetryInitialInterval = 50 * time.Millisecond
	txRetryMaxInterval     = 500 * time.Millisecond
	txRetryMaxRetries      = 3
)

type Application struct {
	ServiceOrder      ServiceOrder
	Messages          *messages.Provider
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_get.Service
	order_logs_get.Service
	order_statuses_get.Service
	order_delete.Service
	order_put.Service
	order_cancel_post.Service
	order_product_put.Service
	order_status_put.Service
}

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideOrderRepository,
	provideOrderProductRepository,
	provideOrderStatusRepository,
	provideOrderLogRepository,
	provideMessageRepository,
)

var orderServiceSet = wire.NewSet(
	repositorySet,

	provideMessages,
	providePermissionGateway,
	provideOrderService,

	wire.Bind(new(orderService.OrderRepository), new(*orderRepo.Repository)),
	wire.Bind(new(orderService.OrderProductRepository), new(*orderProductRepo.Repository)),
	wire.Bind(new(orderService.OrderStatusRepository), new(*orderStatusRepo.Repository)),
	wire.Bind(new(orderService.OrderLogRepository), new(*orderLogRepo.Repository)),
	wire.Bind(new(orderService.PermissionGate), new(*permission.Gateway)),
	wire.Bind(new(orderService.Messages), new(*messages.Provider)),
	wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
	wire.Bind(new(messages.Repository), new(*messageRepo.Repository)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		orderServiceSet,

		provideMessagesRefreshTask,
		provideOrderStatusMetricsTask,
		metrics.NewSystemCollector,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(messages_refresh.Catalogue), new(*messages.Provider)),
		wire.Bind(new(order_status_metrics.Repository), new(*orderRepo.Repository)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	StatusHandlers    *order_status.StatusHandlerFactory
	BackgroundWorkers *background.Worker
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		orderServiceSet,

		order_status.NewStatusHandlerFactory,
		provideMessagesRefreshTask,
		provideWorkerTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(KafkaWorkerApp), "*"),

		wire.Bind(new(order_status.OrderService), new(*orderService.Service)),
		wire.Bind(new(messages_refresh.Catalogue), new(*messages.Provider)),
	)
	return nil, nil
}

// provideTxManager повторяет транзакцию при конфликте сериализации.
func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: txRetryInitialInterval,
		MaxInterval:     txRetryMaxInterval,
		Multiplier:      2,
		Randomization:   0.5,
		MaxRetries:      txRetryMaxRetries,
		ShouldRetry:     tx.IsSerializationFailure,
		OnRetry: func(uint64, error, time.Duration) {
			TxRetriesTotal.Inc()
		},
	})
	return tx.New(pool, tx.WithRetrier(retrier))
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideOrderProductRepository(querier *querier.Querier) *orderProductRepo.Repository {
	return orderProductRepo.New(querier)
}

func provideOrderStatusRepository(querier *querier.Querier) *orderStatusRepo.Repository {
	return orderStatusRepo.New(querier)
}

func provideOrderLogRepository(querier *querier.Querier) *orderLogRepo.Repository {
	return orderLogRepo.New(querier)
}

func provideMessageRepository(querier *querier.Querier) *messageRepo.Repository {
	return messageRepo.New(querier)
}

func provideMessages(repo messages.Repository, cfg *config.Config) *messages.Provider {
	return messages.New(repo, cfg.Messages.DefaultLocale)
}

func providePermissionGateway(conn *grpc.ClientConn, log logger.Logger, cfg *config.Config) *permission.Gateway {
	return permission.New(conn, cfg.PermissionService, log)
}

func provideOrderService(
	orders orderService.OrderRepository,
	products orderService.OrderProductRepository,
	statuses orderService.OrderStatusRepository,
	logs orderService.OrderLogRepository,
	gate orderService.PermissionGate,
	msgs orderService.Messages,
	txManager orderService.TxManager,
	log logger.Logger,
) *orderService.Service {
	return orderService.New(orders, products, statuses, logs, gate, msgs, txManager, log)
}

func provideMessagesRefreshTask(
	log logger.Logger,
	catalogue messages_refresh.Catalogue,
	cfg *config.Config,
) *messages_refresh.MessagesRefresh {
	return messages_refresh.New(log, catalogue, cfg.Tasks.MessagesRefreshInterval)
}

func provideOrderStatusMetricsTask(
	repo order_status_metrics.Repository,
	cfg *config.Config,
) *order_status_metrics.OrderStatusMetrics {
	return order_status_metrics.New(repo, cfg.Tasks.OrderStatusMetricsInterval)
}

func provideTaskList(
	messagesRefreshTask *messages_refresh.MessagesRefresh,
	orderStatusMetricsTask *order_status_metrics.OrderStatusMetrics,
	systemCollector *metrics.SystemCollector,
) []background.Task {
	return []background.Task{
		messagesRefreshTask,
		orderStatusMetricsTask,
		systemCollector,
	}
}

// provideWorkerTaskList - воркеру нужны только актуальные тексты сообщений.
func provideWorkerTaskList(
	messagesRefreshTask *messages_refresh.MessagesRefresh,
) []background.Task {
	return []background.Task{
		messagesRefreshTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
