package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

type TodoService struct {
	repository ports.OwnerStateRepository
	clock      ports.Clock
	events     ports.EventSink
	limits     domain.Limits
}

func NewTodoService(
	repository ports.OwnerStateRepository,
	clock ports.Clock,
	events ports.EventSink,
	limits domain.Limits,
) *TodoService {
	return &TodoService{
		repository: repository,
		clock:      clock,
		events:     events,
		limits:     limits,
	}
}

func (s *TodoService) CreateTodo(ctx context.Context, owner string, input domain.CreateTodoInput) (domain.Task, error) {
	if err := s.limits.ValidateTitle(input.Title); err != nil {
		return domain.Task{}, err
	}
	if err := s.limits.ValidateDescription(input.Description); err != nil {
		return domain.Task{}, err
	}
	if !input.Priority.Valid() {
		return domain.Task{}, domain.ErrInvalidPriority
	}

	state, err := s.load(ctx, owner)
	if err != nil {
		return domain.Task{}, err
	}
	if state.Tasks.Len() >= s.limits.MaxTodosPerOwner {
		return domain.Task{}, domain.ErrTodoListFull
	}

	now := s.clock.Now()
	task := domain.Task{
		ID:          state.AllocateID(),
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := state.Tasks.Insert(task); err != nil {
		return domain.Task{}, err
	}

	if err := s.commit(ctx, owner, &state); err != nil {
		return domain.Task{}, err
	}
	s.notify(ctx, domain.TodoCreated(owner, task.ID))

	return task, nil
}

func (s *TodoService) UpdateTodo(ctx context.Context, owner string, id uint64, patch domain.TodoPatch) (domain.Task, error) {
	state, err := s.load(ctx, owner)
	if err != nil {
		return domain.Task{}, err
	}

	task, err := state.Tasks.Find(id)
	if err != nil {
		return domain.Task{}, err
	}

	// Every provided field is checked before any of them is applied.
	if patch.Title != nil {
		if err := s.limits.ValidateTitle(*patch.Title); err != nil {
			return domain.Task{}, err
		}
	}
	if patch.Description != nil {
		if err := s.limits.ValidateDescription(*patch.Description); err != nil {
			return domain.Task{}, err
		}
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return domain.Task{}, domain.ErrInvalidPriority
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	task.UpdatedAt = s.clock.Now()
	updated := *task

	if err := s.commit(ctx, owner, &state); err != nil {
		return domain.Task{}, err
	}
	s.notify(ctx, domain.TodoUpdated(owner, id))

	return updated, nil
}

func (s *TodoService) ToggleTodoCompletion(ctx context.Context, owner string, id uint64) (domain.Task, error) {
	state, err := s.load(ctx, owner)
	if err != nil {
		return domain.Task{}, err
	}

	task, err := state.Tasks.Find(id)
	if err != nil {
		return domain.Task{}, err
	}

	now := s.clock.Now()
	task.Completed = !task.Completed
	task.UpdatedAt = now
	if task.Completed {
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}
	toggled := *task

	if err := s.commit(ctx, owner, &state); err != nil {
		return domain.Task{}, err
	}
	s.notify(ctx, domain.TodoCompletionToggled(owner, id, toggled.Completed))

	return toggled, nil
}

func (s *TodoService) DeleteTodo(ctx context.Context, owner string, id uint64) error {
	state, err := s.load(ctx, owner)
	if err != nil {
		return err
	}

	if err := state.Tasks.Remove(id); err != nil {
		return err
	}

	if err := s.commit(ctx, owner, &state); err != nil {
		return err
	}
	s.notify(ctx, domain.TodoDeleted(owner, id))

	return nil
}

func (s *TodoService) ListTodos(ctx context.Context, owner string) ([]domain.Task, error) {
	state, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}
	return state.Tasks.Tasks(), nil
}

func (s *TodoService) GetTodo(ctx context.Context, owner string, id uint64) (domain.Task, error) {
	state, err := s.load(ctx, owner)
	if err != nil {
		return domain.Task{}, err
	}

	task, err := state.Tasks.Find(id)
	if err != nil {
		return domain.Task{}, err
	}
	return *task, nil
}

func (s *TodoService) GetStatistics(ctx context.Context, owner string) (domain.Statistics, error) {
	state, err := s.load(ctx, owner)
	if err != nil {
		return domain.Statistics{}, err
	}
	return state.Stats, nil
}

func (s *TodoService) load(ctx context.Context, owner string) (domain.OwnerState, error) {
	state, err := s.repository.Load(ctx, owner)
	if err != nil {
		return domain.OwnerState{}, fmt.Errorf("load owner state: %w", err)
	}
	return state, nil
}

// commit refreshes the statistics cache and persists the whole owner state.
func (s *TodoService) commit(ctx context.Context, owner string, state *domain.OwnerState) error {
	state.RecomputeStatistics()
	if err := s.repository.Save(ctx, owner, *state); err != nil {
		return fmt.Errorf("save owner state: %w", err)
	}
	return nil
}

// notify is fire-and-forget: the mutation has already been committed.
func (s *TodoService) notify(ctx context.Context, event domain.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		zap.L().Warn("failed to publish todo event",
			zap.String("kind", string(event.Kind)),
			zap.String("owner", event.Owner),
			zap.Uint64("todo_id", event.TodoID),
			zap.Error(err),
		)
	}
}

var _ ports.TodoService = (*TodoService)(nil)
