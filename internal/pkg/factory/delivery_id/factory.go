package delivery_id

import (
	"fmt"

	"github.com/google/uuid"
)

// Factory выдает UUIDv7: время в старших битах дает монотонно растущие
// id, что хорошо ложится на keyset-пагинацию и btree-индексы.
type Factory struct{}

func New() *Factory {
	return &Factory{}
}

func (f *Factory) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate delivery id: %w", err)
	}
	return id.String(), nil
}
