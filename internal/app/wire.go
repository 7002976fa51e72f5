//go:build wireinject
// +build wireinject

package app

import (
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	statusEventsGateway "dispatch/internal/gateway/kafka/status_events"
	"dispatch/internal/handlers/rest/deliveries_bulk_post"
	"dispatch/internal/handlers/rest/deliveries_get"
	"dispatch/internal/handlers/rest/deliveries_my_get"
	"dispatch/internal/handlers/rest/deliveries_pending_get"
	"dispatch/internal/handlers/rest/delivery_assign_post"
	"dispatch/internal/handlers/rest/delivery_cancel_put"
	"dispatch/internal/handlers/rest/delivery_post"
	"dispatch/internal/handlers/rest/delivery_status_put"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/delivery_id"

	auditRepo "dispatch/internal/repository/audit"
	deliveryRepo "dispatch/internal/repository/delivery"
	auditService "dispatch/internal/service/audit"
	deliveryService "dispatch/internal/service/delivery"
	dispatchService "dispatch/internal/service/dispatch"
	queryService "dispatch/internal/service/query"

	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/tx"
)

type Application struct {
	ServiceDelivery ServiceDelivery
	ServiceDispatch ServiceDispatch
	ServiceQuery    ServiceQuery
}

type ServiceDelivery interface {
	delivery_post.Service
	deliveries_bulk_post.Service
}

type ServiceDispatch interface {
	delivery_assign_post.Service
	delivery_status_put.Service
	delivery_cancel_put.Service
}

type ServiceQuery interface {
	deliveries_my_get.Service
	deliveries_get.Service
	deliveries_pending_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideDeliveryRepository,
		delivery_id.New,
		provideStatusEventsGateway,

		provideServiceDelivery,
		provideServiceDispatch,
		provideServiceQuery,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),
		wire.Bind(new(ServiceQuery), new(*queryService.Query)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	AuditService *auditService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-status-events)
func InitializeKafkaWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideAuditRepository,
		provideServiceAudit,

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

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideAuditRepository(querier *querier.Querier) *auditRepo.Repository {
	return auditRepo.New(querier)
}

func provideStatusEventsGateway(producer sarama.SyncProducer, cfg *config.Config) *statusEventsGateway.Gateway {
	return statusEventsGateway.New(producer, cfg.Kafka.Topic)
}

func provideServiceDelivery(
	repository *deliveryRepo.Repository,
	idFactory *delivery_id.Factory,
) *deliveryService.Delivery {
	return deliveryService.New(repository, idFactory)
}

func provideServiceDispatch(
	log logger.Logger,
	repository *deliveryRepo.Repository,
	publisher *statusEventsGateway.Gateway,
	txManager *tx.Manager,
) *dispatchService.Dispatch {
	return dispatchService.New(log, repository, publisher, txManager)
}

func provideServiceQuery(repository *deliveryRepo.Repository) *queryService.Query {
	return queryService.New(repository)
}

func provideServiceAudit(repository *auditRepo.Repository) *auditService.Service {
	return auditService.New(repository)
}
