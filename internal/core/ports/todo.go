package ports

import (
	"context"

	"todolist/internal/core/domain"
)

// Clock supplies the timestamp stamped on every mutation.
type Clock interface {
	Now() domain.Moment
}

// EventSink receives notifications of committed mutations.
type EventSink interface {
	Publish(ctx context.Context, event domain.Event) error
}

// OwnerStateRepository persists the per-owner bundle of tasks, counter and
// statistics. Load returns an empty state for unknown owners and never shares
// memory with what it stores.
type OwnerStateRepository interface {
	Load(ctx context.Context, owner string) (domain.OwnerState, error)
	Save(ctx context.Context, owner string, state domain.OwnerState) error
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type TodoService interface {
	CreateTodo(ctx context.Context, owner string, input domain.CreateTodoInput) (domain.Task, error)
	UpdateTodo(ctx context.Context, owner string, id uint64, patch domain.TodoPatch) (domain.Task, error)
	ToggleTodoCompletion(ctx context.Context, owner string, id uint64) (domain.Task, error)
	DeleteTodo(ctx context.Context, owner string, id uint64) error
	ListTodos(ctx context.Context, owner string) ([]domain.Task, error)
	GetTodo(ctx context.Context, owner string, id uint64) (domain.Task, error)
	GetStatistics(ctx context.Context, owner string) (domain.Statistics, error)
}
