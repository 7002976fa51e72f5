package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/service/dispatch"
	"dispatch/internal/service/query"
	"dispatch/pkg/cursor"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, requester_id,
		pickup_address, pickup_lon, pickup_lat,
		dropoff_address, dropoff_lon, dropoff_lat,
		product_details, notes, priority, status,
		assigned_operator_id, eta_minutes, cancellation_reason,
		created_at, updated_at`

var selectColumns = []string{
	"id", "requester_id",
	"pickup_address", "pickup_lon", "pickup_lat",
	"dropoff_address", "dropoff_lon", "dropoff_lat",
	"product_details", "notes", "priority", "status",
	"assigned_operator_id", "eta_minutes", "cancellation_reason",
	"created_at", "updated_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryEntity entities.Delivery) (*entities.Delivery, error) {
	deliveryModel := FromDomain(&deliveryEntity)

	query := `
		INSERT INTO deliveries (` + deliveryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + deliveryColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		deliveryModel.ID,
		deliveryModel.RequesterID,
		deliveryModel.PickupAddress,
		deliveryModel.PickupLon,
		deliveryModel.PickupLat,
		deliveryModel.DropoffAddress,
		deliveryModel.DropoffLon,
		deliveryModel.DropoffLat,
		deliveryModel.ProductDetails,
		deliveryModel.Notes,
		deliveryModel.PriorityRank,
		deliveryModel.Status,
		deliveryModel.AssignedOperatorID,
		deliveryModel.ETAMinutes,
		deliveryModel.CancellationReason,
		deliveryModel.CreatedAt,
		deliveryModel.UpdatedAt,
	)

	created, err := scanDelivery(row)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByID(ctx context.Context, deliveryID string) (*entities.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = $1`

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, deliveryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dispatch.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(deliveryModel), nil
}

// AssignOperator - арбитраж конкурентных заявок на назначение. Предусловие
// (статус pending, оператор не назначен) выражено в WHERE того же UPDATE,
// поэтому из гонки выходит ровно один победитель.
func (r *Repository) AssignOperator(ctx context.Context, deliveryID, operatorID string, at time.Time) (*entities.Delivery, error) {
	query := `
		UPDATE deliveries
		SET status = 'accepted',
		    assigned_operator_id = $2,
		    updated_at = $3
		WHERE id = $1
		  AND status = 'pending'
		  AND assigned_operator_id IS NULL
		RETURNING ` + deliveryColumns

	deliveryModel, err := scanDelivery(r.querier.QueryRow(ctx, query, deliveryID, operatorID, at))
	if err == nil {
		return ToDomain(deliveryModel), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected delivery repository assign error: %w", err)
	}

	// условие не сработало: различаем "записи нет" и "проиграли гонку"
	var exists bool
	checkErr := r.querier.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM deliveries WHERE id = $1)`,
		deliveryID,
	).Scan(&exists)
	if checkErr != nil {
		return nil, fmt.Errorf("unexpected delivery repository assign check error: %w", checkErr)
	}

	if !exists {
		return nil, dispatch.ErrDeliveryNotFound
	}
	return nil, dispatch.ErrAlreadyAssigned
}

// UpdateStatus применяет переход одним условным апдейтом: WHERE фиксирует
// ожидаемый текущий статус, так что параллельный переход не может затереть
// чужую запись.
func (r *Repository) UpdateStatus(ctx context.Context, update entities.StatusUpdate) (*entities.Delivery, error) {
	var etaMinutes *int32
	if update.ETAMinutes != nil {
		eta := int32(*update.ETAMinutes)
		etaMinutes = &eta
	}

	query := `
		UPDATE deliveries
		SET status = $3,
		    eta_minutes = COALESCE($4, eta_minutes),
		    cancellation_reason = COALESCE($5, cancellation_reason),
		    updated_at = $6
		WHERE id = $1
		  AND status = $2
		RETURNING ` + deliveryColumns

	deliveryModel, err := scanDelivery(r.querier.QueryRow(
		ctx,
		query,
		update.DeliveryID,
		update.From.String(),
		update.To.String(),
		etaMinutes,
		update.CancellationReason,
		update.UpdatedAt,
	))
	if err == nil {
		return ToDomain(deliveryModel), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("unexpected delivery repository update status error: %w", err)
	}

	var exists bool
	checkErr := r.querier.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM deliveries WHERE id = $1)`,
		update.DeliveryID,
	).Scan(&exists)
	if checkErr != nil {
		return nil, fmt.Errorf("unexpected delivery repository update status check error: %w", checkErr)
	}

	if !exists {
		return nil, dispatch.ErrDeliveryNotFound
	}
	// статус уже не update.From - запись успел изменить кто-то другой
	return nil, dispatch.ErrInvalidTransition
}

func (r *Repository) ListByRequester(ctx context.Context, requesterID string, after *cursor.PageToken, limit int) ([]entities.Delivery, error) {
	builder := qb.
		Select(selectColumns...).
		From("deliveries").
		Where(sq.Eq{"requester_id": requesterID})

	if after != nil {
		builder = builder.Where(sq.Or{
			sq.Lt{"created_at": after.CreatedAt},
			sq.And{
				sq.Eq{"created_at": after.CreatedAt},
				sq.Lt{"id": after.ID},
			},
		})
	}

	builder = builder.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	return r.queryList(ctx, builder)
}

func (r *Repository) List(ctx context.Context, filter query.ListFilter, after *cursor.PageToken, limit int) ([]entities.Delivery, error) {
	builder := qb.
		Select(selectColumns...).
		From("deliveries")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.Priority != nil {
		builder = builder.Where(sq.Eq{"priority": filter.Priority.Rank()})
	}

	// keyset-пагинация по (priority DESC, created_at ASC, id ASC)
	if after != nil {
		builder = builder.Where(sq.Or{
			sq.Lt{"priority": after.PriorityRank},
			sq.And{
				sq.Eq{"priority": after.PriorityRank},
				sq.Or{
					sq.Gt{"created_at": after.CreatedAt},
					sq.And{
						sq.Eq{"created_at": after.CreatedAt},
						sq.Gt{"id": after.ID},
					},
				},
			},
		})
	}

	builder = builder.
		OrderBy("priority DESC", "created_at ASC", "id ASC").
		Limit(uint64(limit))

	return r.queryList(ctx, builder)
}

func (r *Repository) queryList(ctx context.Context, builder sq.SelectBuilder) ([]entities.Delivery, error) {
	querySQL, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list build error: %w", err)
	}

	rows, err := r.querier.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	defer rows.Close()

	var deliveries []entities.Delivery
	for rows.Next() {
		deliveryModel, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery repository list scan error: %w", err)
		}
		deliveries = append(deliveries, *ToDomain(deliveryModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list rows error: %w", err)
	}

	return deliveries, nil
}

func scanDelivery(row pgx.Row) (*DeliveryDB, error) {
	var d DeliveryDB
	err := row.Scan(
		&d.ID,
		&d.RequesterID,
		&d.PickupAddress,
		&d.PickupLon,
		&d.PickupLat,
		&d.DropoffAddress,
		&d.DropoffLon,
		&d.DropoffLat,
		&d.ProductDetails,
		&d.Notes,
		&d.PriorityRank,
		&d.Status,
		&d.AssignedOperatorID,
		&d.ETAMinutes,
		&d.CancellationReason,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
