package query

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
	"dispatch/pkg/cursor"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Query struct {
	repository Repository
}

func New(repository Repository) *Query {
	return &Query{
		repository: repository,
	}
}

// Page - одна страница выдачи. NextCursor пустой, когда страниц больше нет.
// Страницы snapshot-tolerant: параллельные вставки и отмены между запросами
// не дублируют и не пропускают записи.
type Page struct {
	Items      []entities.Delivery
	NextCursor string
}

func (q *Query) ListMine(ctx context.Context, actor entities.Actor, pageCursor string, limit int) (*Page, error) {
	after, err := decodeCursor(pageCursor)
	if err != nil {
		return nil, err
	}
	limit = clampLimit(limit)

	items, err := q.repository.ListByRequester(ctx, actor.SubjectID, after, limit)
	if err != nil {
		return nil, fmt.Errorf("list deliveries by requester: %w", err)
	}

	return newPage(items, limit), nil
}

func (q *Query) ListAll(ctx context.Context, actor entities.Actor, statusFilter, priorityFilter, pageCursor string, limit int) (*Page, error) {
	if actor.Role != entities.RoleSupervisor {
		return nil, ErrPermissionDenied
	}

	filter, err := parseFilter(statusFilter, priorityFilter)
	if err != nil {
		return nil, err
	}
	after, err := decodeCursor(pageCursor)
	if err != nil {
		return nil, err
	}
	limit = clampLimit(limit)

	items, err := q.repository.List(ctx, filter, after, limit)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}

	return newPage(items, limit), nil
}

// ListPendingForDispatch - очередь назначения для операторов: только pending,
// emergency раньше low независимо от возраста, внутри класса строгий FIFO.
func (q *Query) ListPendingForDispatch(ctx context.Context, actor entities.Actor, pageCursor string, limit int) (*Page, error) {
	if actor.Role != entities.RoleOperator && actor.Role != entities.RoleSupervisor {
		return nil, ErrPermissionDenied
	}

	after, err := decodeCursor(pageCursor)
	if err != nil {
		return nil, err
	}
	limit = clampLimit(limit)

	pending := entities.StatusPending
	items, err := q.repository.List(ctx, ListFilter{Status: &pending}, after, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending deliveries: %w", err)
	}

	return newPage(items, limit), nil
}

func newPage(items []entities.Delivery, limit int) *Page {
	page := &Page{Items: items}

	// неполная страница означает конец выдачи
	if len(items) == limit {
		last := items[len(items)-1]
		page.NextCursor = cursor.Encode(cursor.PageToken{
			PriorityRank: last.Priority.Rank(),
			CreatedAt:    last.CreatedAt,
			ID:           last.ID,
		})
	}

	return page
}

func decodeCursor(pageCursor string) (*cursor.PageToken, error) {
	if pageCursor == "" {
		return nil, nil
	}

	token, err := cursor.Decode(pageCursor)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
	}
	return &token, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// parseFilter принимает пустую строку и "all" как отсутствие фильтра.
func parseFilter(statusFilter, priorityFilter string) (ListFilter, error) {
	var filter ListFilter

	if statusFilter != "" && statusFilter != "all" {
		switch statusFilter {
		case "pending", "accepted", "in_transit", "delivered", "cancelled":
			status := entities.DeliveryStatus(statusFilter)
			filter.Status = &status
		default:
			return ListFilter{}, fmt.Errorf("%w: %q", ErrInvalidStatusFilter, statusFilter)
		}
	}

	if priorityFilter != "" && priorityFilter != "all" {
		switch priorityFilter {
		case "low", "medium", "high", "emergency":
			priority := entities.DeliveryPriority(priorityFilter)
			filter.Priority = &priority
		default:
			return ListFilter{}, fmt.Errorf("%w: %q", ErrInvalidPriorityFilter, priorityFilter)
		}
	}

	return filter, nil
}
