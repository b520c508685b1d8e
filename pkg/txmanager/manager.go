package txmanager

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/semaphore"
)

// ErrAcquire возвращается, когда контекст отменён до входа в критическую секцию
var ErrAcquire = errors.New("txmanager: failed to acquire serializer")

type txKey struct{}

// Manager сериализует транзакции над одним леджером бронирований.
// Все изменяющие операции выполняются строго по одной, поэтому проверка
// доступности и запись в рамках одной fn не могут перемежаться с другой fn.
type Manager struct {
	sem *semaphore.Weighted
}

// NewTransactionManager создает менеджер с одним слотом
func NewTransactionManager() *Manager {
	return &Manager{sem: semaphore.NewWeighted(1)}
}

// DoSerializable выполняет fn эксклюзивно.
// Вложенный вызов с контекстом уже открытой транзакции выполняется сразу, без повторного захвата.
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTransaction(ctx) {
		return fn(ctx)
	}

	if err := m.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%w: %v", ErrAcquire, err)
	}
	defer m.sem.Release(1)

	return fn(context.WithValue(ctx, txKey{}, true))
}

// InTransaction сообщает, выполняется ли код внутри DoSerializable
func InTransaction(ctx context.Context) bool {
	v, _ := ctx.Value(txKey{}).(bool)
	return v
}
