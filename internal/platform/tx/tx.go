package tx

import (
	"context"
	"sync"
)

// Manager brackets a mutation so it is applied as one indivisible step.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// LockManager serializes every Within call behind a single mutex.
type LockManager struct {
	mu sync.Mutex
}

func (m *LockManager) Within(ctx context.Context, fn func(context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}
