//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=query_test
package query

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/cursor"
)

type Repository interface {
	// ListByRequester - заявки одного клиента, новые сначала
	// (created_at DESC, id DESC).
	ListByRequester(ctx context.Context, requesterID string, after *cursor.PageToken, limit int) ([]entities.Delivery, error)

	// List - диспетчерская сортировка: priority DESC, created_at ASC, id ASC.
	List(ctx context.Context, filter ListFilter, after *cursor.PageToken, limit int) ([]entities.Delivery, error)
}

type ListFilter struct {
	Status   *entities.DeliveryStatus
	Priority *entities.DeliveryPriority
}
