//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error)
}

type IDFactory interface {
	NewID() (string, error)
}
