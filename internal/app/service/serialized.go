package service

import (
	"context"
	"sync"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

// SerializedTodoService runs every call of the wrapped service one at a time,
// so each mutation completes before the next one starts.
type SerializedTodoService struct {
	mu    sync.Mutex
	inner ports.TodoService
}

func NewSerializedTodoService(inner ports.TodoService) *SerializedTodoService {
	return &SerializedTodoService{inner: inner}
}

func (s *SerializedTodoService) CreateTodo(ctx context.Context, owner string, input domain.CreateTodoInput) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.CreateTodo(ctx, owner, input)
}

func (s *SerializedTodoService) UpdateTodo(ctx context.Context, owner string, id uint64, patch domain.TodoPatch) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.UpdateTodo(ctx, owner, id, patch)
}

func (s *SerializedTodoService) ToggleTodoCompletion(ctx context.Context, owner string, id uint64) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.ToggleTodoCompletion(ctx, owner, id)
}

func (s *SerializedTodoService) DeleteTodo(ctx context.Context, owner string, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.DeleteTodo(ctx, owner, id)
}

func (s *SerializedTodoService) ListTodos(ctx context.Context, owner string) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.ListTodos(ctx, owner)
}

func (s *SerializedTodoService) GetTodo(ctx context.Context, owner string, id uint64) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.GetTodo(ctx, owner, id)
}

func (s *SerializedTodoService) GetStatistics(ctx context.Context, owner string) (domain.Statistics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.GetStatistics(ctx, owner)
}

var _ ports.TodoService = (*SerializedTodoService)(nil)
