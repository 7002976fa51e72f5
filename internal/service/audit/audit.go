package audit

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

var ErrInvalidEvent = errors.New("invalid status change event")

// Service ведет append-only журнал переходов статусов. Записи никогда не
// обновляются и не удаляются.
type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) RecordStatusChange(ctx context.Context, change entities.StatusChange) error {
	if change.DeliveryID == "" || change.NewStatus == "" || change.OccurredAt.IsZero() {
		return ErrInvalidEvent
	}

	if err := s.repository.InsertStatusEvent(ctx, change); err != nil {
		return fmt.Errorf("insert status event: %w", err)
	}
	return nil
}
