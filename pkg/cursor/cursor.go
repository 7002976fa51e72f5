package cursor

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PageToken фиксирует позицию сортировки (priority rank, created_at, id)
// последнего отданного элемента. Токен непрозрачный для клиента: пересоздание
// или отмена записей между страницами не приводит к пропускам и дублям,
// в отличие от offset/limit.
type PageToken struct {
	PriorityRank int
	CreatedAt    time.Time
	ID           string
}

var ErrInvalidToken = errors.New("invalid page token")

const fieldSeparator = "|"

func Encode(t PageToken) string {
	raw := fmt.Sprintf("%d%s%d%s%s",
		t.PriorityRank,
		fieldSeparator,
		t.CreatedAt.UTC().UnixNano(),
		fieldSeparator,
		t.ID,
	)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func Decode(token string) (PageToken, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return PageToken{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	parts := strings.SplitN(string(raw), fieldSeparator, 3)
	if len(parts) != 3 || parts[2] == "" {
		return PageToken{}, ErrInvalidToken
	}

	rank, err := strconv.Atoi(parts[0])
	if err != nil {
		return PageToken{}, fmt.Errorf("%w: priority rank: %w", ErrInvalidToken, err)
	}

	nanos, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return PageToken{}, fmt.Errorf("%w: created_at: %w", ErrInvalidToken, err)
	}

	return PageToken{
		PriorityRank: rank,
		CreatedAt:    time.Unix(0, nanos).UTC(),
		ID:           parts[2],
	}, nil
}
