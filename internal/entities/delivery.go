package entities

import "time"

type Delivery struct {
	ID                 string
	RequesterID        string
	Pickup             Location
	Dropoff            Location
	ProductDetails     string
	Notes              string
	Priority           DeliveryPriority
	Status             DeliveryStatus
	AssignedOperatorID *string
	ETAMinutes         *int
	CancellationReason *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Location struct {
	Address   string
	Longitude float64
	Latitude  float64
}

type DeliveryPriority string

const (
	PriorityLow       DeliveryPriority = "low"
	PriorityMedium    DeliveryPriority = "medium"
	PriorityHigh      DeliveryPriority = "high"
	PriorityEmergency DeliveryPriority = "emergency"
)

const DefaultPriority = PriorityMedium

func (p DeliveryPriority) String() string {
	return string(p)
}

// Rank - числовой вес приоритета для сортировки и курсоров.
// В БД приоритет хранится именно как rank (smallint).
func (p DeliveryPriority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	case PriorityEmergency:
		return 3
	default:
		return -1
	}
}

func PriorityFromRank(rank int) DeliveryPriority {
	switch rank {
	case 0:
		return PriorityLow
	case 1:
		return PriorityMedium
	case 2:
		return PriorityHigh
	case 3:
		return PriorityEmergency
	default:
		return ""
	}
}

type DeliveryStatus string

const (
	StatusPending   DeliveryStatus = "pending"
	StatusAccepted  DeliveryStatus = "accepted"
	StatusInTransit DeliveryStatus = "in_transit"
	StatusDelivered DeliveryStatus = "delivered"
	StatusCancelled DeliveryStatus = "cancelled"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

// CanTransitionTo - граф жизненного цикла. Любое ребро вне графа запрещено,
// из терминальных статусов выхода нет.
func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusAccepted || next == StatusCancelled
	case StatusAccepted:
		return next == StatusInTransit || next == StatusCancelled
	case StatusInTransit:
		return next == StatusDelivered || next == StatusCancelled
	default:
		return false
	}
}

func (s DeliveryStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// StatusUpdate - одно условное обновление статуса: переход From -> To
// применяется только если запись все еще в статусе From.
type StatusUpdate struct {
	DeliveryID         string
	From               DeliveryStatus
	To                 DeliveryStatus
	ETAMinutes         *int
	CancellationReason *string
	UpdatedAt          time.Time
}

// StatusChange - событие о совершенном переходе, публикуется в Kafka
// и складывается воркером в append-only журнал.
type StatusChange struct {
	DeliveryID string
	OldStatus  DeliveryStatus
	NewStatus  DeliveryStatus
	ActorID    string
	ActorRole  string
	OccurredAt time.Time
}
