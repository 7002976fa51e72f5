//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_bulk_post_test
package deliveries_bulk_post

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/internal/service/delivery"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	BulkIngest(ctx context.Context, actor entities.Actor, inputs []delivery.CreateInput) ([]delivery.IngestResult, error)
}
