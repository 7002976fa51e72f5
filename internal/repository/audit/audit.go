package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// InsertStatusEvent пишет событие в append-only журнал. Повторная доставка
// того же события (Kafka at-least-once) упирается в уникальный индекс
// (delivery_id, occurred_at) и трактуется как успех.
func (r *Repository) InsertStatusEvent(ctx context.Context, change entities.StatusChange) error {
	query := `
		INSERT INTO delivery_status_events
			(delivery_id, old_status, new_status, actor_id, actor_role, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.querier.Exec(
		ctx,
		query,
		change.DeliveryID,
		change.OldStatus.String(),
		change.NewStatus.String(),
		change.ActorID,
		change.ActorRole,
		change.OccurredAt,
	)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("unexpected audit repository insert error: %w", err)
	}

	return nil
}
