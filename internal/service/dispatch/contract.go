//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Repository interface {
	GetByID(ctx context.Context, deliveryID string) (*entities.Delivery, error)

	// AssignOperator - атомарный условный апдейт: запись переводится в
	// accepted и получает оператора только если она все еще pending и не
	// назначена. Проигравший гонку получает ErrAlreadyAssigned.
	AssignOperator(ctx context.Context, deliveryID, operatorID string, at time.Time) (*entities.Delivery, error)

	// UpdateStatus применяет переход только если текущий статус записи
	// равен update.From.
	UpdateStatus(ctx context.Context, update entities.StatusUpdate) (*entities.Delivery, error)
}

type EventPublisher interface {
	PublishStatusChange(ctx context.Context, change entities.StatusChange) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
