//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=audit_test
package audit

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	// InsertStatusEvent добавляет событие в журнал; повторная доставка того же
	// события из Kafka не должна приводить к ошибке.
	InsertStatusEvent(ctx context.Context, change entities.StatusChange) error
}
