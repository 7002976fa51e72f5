package status_events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"dispatch/internal/entities"
)

// Gateway публикует события delivery.status.changed. Ключ сообщения -
// id доставки, чтобы события одной доставки попадали в одну партицию
// и сохраняли порядок.
type Gateway struct {
	producer sarama.SyncProducer
	topic    string
}

func New(producer sarama.SyncProducer, topic string) *Gateway {
	return &Gateway{
		producer: producer,
		topic:    topic,
	}
}

type statusChangedEvent struct {
	DeliveryID string    `json:"delivery_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	ActorID    string    `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (g *Gateway) PublishStatusChange(_ context.Context, change entities.StatusChange) error {
	event := statusChangedEvent{
		DeliveryID: change.DeliveryID,
		OldStatus:  change.OldStatus.String(),
		NewStatus:  change.NewStatus.String(),
		ActorID:    change.ActorID,
		ActorRole:  change.ActorRole,
		OccurredAt: change.OccurredAt,
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status change event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(change.DeliveryID),
		Value: sarama.ByteEncoder(value),
	}

	if _, _, err := g.producer.SendMessage(message); err != nil {
		return fmt.Errorf("send status change event: %w", err)
	}

	return nil
}
