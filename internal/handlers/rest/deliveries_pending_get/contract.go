//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_pending_get_test
package deliveries_pending_get

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/internal/service/query"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListPendingForDispatch(ctx context.Context, actor entities.Actor, pageCursor string, limit int) (*query.Page, error)
}
