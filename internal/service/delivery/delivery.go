package delivery

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

type Delivery struct {
	repository Repository
	idFactory  IDFactory
}

func New(repository Repository, idFactory IDFactory) *Delivery {
	return &Delivery{
		repository: repository,
		idFactory:  idFactory,
	}
}

type CreateInput struct {
	// RequesterID заполняется только при bulk ingest, где супервизор
	// загружает заявки от имени клиентов. В CreateDelivery берется из actor.
	RequesterID    string
	Pickup         LocationInput
	Dropoff        LocationInput
	ProductDetails string
	Notes          string
	Priority       string
}

type LocationInput struct {
	Address     string
	Coordinates []float64 // [longitude, latitude]
}

// IngestResult - результат по одной записи batch-загрузки: либо id созданной
// доставки, либо причина отказа. Порядок соответствует порядку входных записей.
type IngestResult struct {
	DeliveryID string
	Err        error
}

func (d *Delivery) CreateDelivery(ctx context.Context, actor entities.Actor, input CreateInput) (*entities.Delivery, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	return d.create(ctx, actor.SubjectID, input)
}

// BulkIngest создает записи независимо друг от друга: ошибка в N-й записи не
// откатывает уже созданные. Каждая входная запись получает свой результат.
func (d *Delivery) BulkIngest(ctx context.Context, actor entities.Actor, inputs []CreateInput) ([]IngestResult, error) {
	if actor.Role != entities.RoleSupervisor {
		return nil, ErrPermissionDenied
	}
	if len(inputs) == 0 {
		return nil, ErrEmptyBatch
	}

	results := make([]IngestResult, len(inputs))
	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			// дедлайн запроса: оставшиеся записи не создаем, но и не теряем
			results[i] = IngestResult{Err: err}
			continue
		}

		if !isValidRequesterID(input.RequesterID) {
			results[i] = IngestResult{Err: fmt.Errorf("%w: requester id", ErrMissingRequiredFields)}
			continue
		}
		if err := validateCreateInput(input); err != nil {
			results[i] = IngestResult{Err: err}
			continue
		}

		created, err := d.create(ctx, input.RequesterID, input)
		if err != nil {
			results[i] = IngestResult{Err: err}
			continue
		}
		results[i] = IngestResult{DeliveryID: created.ID}
	}

	return results, nil
}

func (d *Delivery) create(ctx context.Context, requesterID string, input CreateInput) (*entities.Delivery, error) {
	id, err := d.idFactory.NewID()
	if err != nil {
		return nil, fmt.Errorf("generate delivery id: %w", err)
	}

	priority := entities.DefaultPriority
	if input.Priority != "" {
		priority = entities.DeliveryPriority(input.Priority)
	}

	now := time.Now().UTC()
	deliveryEntity := entities.Delivery{
		ID:          id,
		RequesterID: requesterID,
		Pickup: entities.Location{
			Address:   input.Pickup.Address,
			Longitude: input.Pickup.Coordinates[0],
			Latitude:  input.Pickup.Coordinates[1],
		},
		Dropoff: entities.Location{
			Address:   input.Dropoff.Address,
			Longitude: input.Dropoff.Coordinates[0],
			Latitude:  input.Dropoff.Coordinates[1],
		},
		ProductDetails: input.ProductDetails,
		Notes:          input.Notes,
		Priority:       priority,
		Status:         entities.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := d.repository.Create(ctx, deliveryEntity)
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}
	return created, nil
}
