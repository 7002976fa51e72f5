package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// Причины отмены по умолчанию, если вызывающий не передал свою.
const (
	DefaultReasonRequester = "User cancelled"
	DefaultReasonOperator  = "Cancelled by operator"
)

type Dispatch struct {
	log        serviceLogger
	repository Repository
	publisher  EventPublisher
	txManager  TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	publisher EventPublisher,
	txManager TxManager,
) *Dispatch {
	return &Dispatch{
		log:        log,
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
	}
}

// Assign закрепляет оператора за pending-доставкой. Арбитраж конкурентных
// заявок выполняет хранилище одним условным апдейтом: из двух одновременных
// вызовов выигрывает ровно один, второй получает ErrAlreadyAssigned.
func (d *Dispatch) Assign(ctx context.Context, actor entities.Actor, deliveryID, operatorID string) (*entities.Delivery, error) {
	if !isValidID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidID(operatorID) {
		return nil, ErrInvalidOperatorID
	}

	switch actor.Role {
	case entities.RoleOperator:
		// оператор может забрать доставку только на себя
		if operatorID != actor.SubjectID {
			return nil, ErrPermissionDenied
		}
	case entities.RoleSupervisor:
	default:
		return nil, ErrPermissionDenied
	}

	var assigned *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		deliveryEntity, err := d.repository.AssignOperator(ctx, deliveryID, operatorID, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("assign operator: %w", err)
		}
		assigned = deliveryEntity
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.publishStatusChange(ctx, actor, assigned.ID, entities.StatusPending, entities.StatusAccepted)
	return assigned, nil
}

// UpdateStatus проверяет ребро графа жизненного цикла и гард роли, затем
// применяет переход одним условным апдейтом. Проверка и мутация выполняются
// в одной транзакции: либо фиксируется новый статус вместе с побочными полями
// (eta, причина отмены, updated_at), либо запись не меняется вовсе.
func (d *Dispatch) UpdateStatus(ctx context.Context, actor entities.Actor, deliveryID, newStatus string, etaMinutes *int, reason *string) (*entities.Delivery, error) {
	if !isValidID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}
	if !isValidStatus(newStatus) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}
	if etaMinutes != nil && *etaMinutes <= 0 {
		return nil, ErrInvalidETA
	}

	target := entities.DeliveryStatus(newStatus)

	var (
		updated *entities.Delivery
		from    entities.DeliveryStatus
	)
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		// pending -> accepted происходит только через Assign: иначе запись
		// оказалась бы accepted без назначенного оператора
		if target == entities.StatusAccepted {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
		}
		if !current.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
		}
		if !transitionAllowedFor(actor, current, target) {
			return ErrPermissionDenied
		}

		update := entities.StatusUpdate{
			DeliveryID: deliveryID,
			From:       current.Status,
			To:         target,
			UpdatedAt:  time.Now().UTC(),
		}
		if !target.Terminal() {
			update.ETAMinutes = etaMinutes
		}
		if target == entities.StatusCancelled {
			update.CancellationReason = pointer.To(cancellationReason(actor, reason))
		}

		updated, err = d.repository.UpdateStatus(ctx, update)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		from = current.Status
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.publishStatusChange(ctx, actor, updated.ID, from, target)
	return updated, nil
}

// Cancel - обертка над UpdateStatus с теми же гардами ролей: клиент отменяет
// только свою pending-доставку, оператор/супервизор - accepted и in_transit,
// delivered не отменяет никто.
func (d *Dispatch) Cancel(ctx context.Context, actor entities.Actor, deliveryID string, reason *string) (*entities.Delivery, error) {
	return d.UpdateStatus(ctx, actor, deliveryID, entities.StatusCancelled.String(), nil, reason)
}

func transitionAllowedFor(actor entities.Actor, current *entities.Delivery, target entities.DeliveryStatus) bool {
	// единственное ребро, доступное клиенту - отмена собственной pending-заявки
	if current.Status == entities.StatusPending {
		return target == entities.StatusCancelled &&
			actor.Role == entities.RoleClient &&
			actor.SubjectID == current.RequesterID
	}

	switch actor.Role {
	case entities.RoleSupervisor:
		return true
	case entities.RoleOperator:
		return current.AssignedOperatorID != nil && *current.AssignedOperatorID == actor.SubjectID
	default:
		return false
	}
}

func cancellationReason(actor entities.Actor, reason *string) string {
	if reason != nil && *reason != "" {
		return *reason
	}
	if actor.Role == entities.RoleClient {
		return DefaultReasonRequester
	}
	return DefaultReasonOperator
}

// Публикация события - best effort: доставка уже зафиксирована в БД,
// ошибку брокера логируем и не возвращаем вызывающему.
func (d *Dispatch) publishStatusChange(ctx context.Context, actor entities.Actor, deliveryID string, from, to entities.DeliveryStatus) {
	change := entities.StatusChange{
		DeliveryID: deliveryID,
		OldStatus:  from,
		NewStatus:  to,
		ActorID:    actor.SubjectID,
		ActorRole:  actor.Role.String(),
		OccurredAt: time.Now().UTC(),
	}

	if err := d.publisher.PublishStatusChange(ctx, change); err != nil {
		d.log.With(
			logger.NewField("error", err),
			logger.NewField("delivery", deliveryID),
			logger.NewField("status", to.String()),
		).Warn("publish delivery.status.changed event")
	}
}
