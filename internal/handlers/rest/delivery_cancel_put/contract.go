//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_cancel_put_test
package delivery_cancel_put

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Cancel(ctx context.Context, actor entities.Actor, deliveryID string, reason *string) (*entities.Delivery, error)
}
