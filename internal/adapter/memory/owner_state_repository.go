package memory

import (
	"context"
	"sync"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

type OwnerStateRepository struct {
	mu       sync.RWMutex
	capacity int
	states   map[string]domain.OwnerState
}

var (
	_ ports.OwnerStateRepository = (*OwnerStateRepository)(nil)
	_ ports.HealthChecker        = (*OwnerStateRepository)(nil)
)

func NewOwnerStateRepository(capacity int) *OwnerStateRepository {
	return &OwnerStateRepository{
		capacity: capacity,
		states:   make(map[string]domain.OwnerState),
	}
}

func (r *OwnerStateRepository) Load(_ context.Context, owner string) (domain.OwnerState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.states[owner]
	if !ok {
		return domain.NewOwnerState(r.capacity), nil
	}
	return state.Clone(), nil
}

func (r *OwnerStateRepository) Save(_ context.Context, owner string, state domain.OwnerState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[owner] = state.Clone()
	return nil
}

// Ping always succeeds; the store lives in process memory.
func (r *OwnerStateRepository) Ping(context.Context) error {
	return nil
}
