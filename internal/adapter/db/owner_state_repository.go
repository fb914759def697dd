package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

const (
	selectOwnerQuery = `
SELECT next_id
FROM todo_owners
WHERE owner = ?
`
	selectTodosQuery = `
SELECT id, title, description, completed, priority, created_at, updated_at, completed_at
FROM todos
WHERE owner = ?
ORDER BY position
`
	deleteOwnerQuery = `DELETE FROM todo_owners WHERE owner = ?`
	deleteTodosQuery = `DELETE FROM todos WHERE owner = ?`
	insertOwnerQuery = `
INSERT INTO todo_owners (owner, next_id, total, completed, pending, high_priority)
VALUES (?, ?, ?, ?, ?, ?)
`
	insertTodoQuery = `
INSERT INTO todos (owner, id, position, title, description, completed, priority, created_at, updated_at, completed_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`
)

// OwnerStateRepository stores owner state in two tables: todo_owners holds the
// counter and the statistics cache, todos holds the tasks ordered by position.
// Statistics are written for readers of the table; Load recomputes them from
// the tasks.
type OwnerStateRepository struct {
	db       *sqlx.DB
	capacity int
}

type todoRow struct {
	ID          uint64        `db:"id"`
	Title       string        `db:"title"`
	Description string        `db:"description"`
	Completed   bool          `db:"completed"`
	Priority    uint8         `db:"priority"`
	CreatedAt   uint64        `db:"created_at"`
	UpdatedAt   uint64        `db:"updated_at"`
	CompletedAt sql.NullInt64 `db:"completed_at"`
}

var (
	_ ports.OwnerStateRepository = (*OwnerStateRepository)(nil)
	_ ports.HealthChecker        = (*OwnerStateRepository)(nil)
)

func NewOwnerStateRepository(db *sqlx.DB, capacity int) *OwnerStateRepository {
	return &OwnerStateRepository{db: db, capacity: capacity}
}

func (r *OwnerStateRepository) Load(ctx context.Context, owner string) (domain.OwnerState, error) {
	var nextID uint64
	err := r.db.GetContext(ctx, &nextID, r.db.Rebind(selectOwnerQuery), owner)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewOwnerState(r.capacity), nil
	}
	if err != nil {
		return domain.OwnerState{}, fmt.Errorf("select owner: %w", err)
	}

	var rows []todoRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(selectTodosQuery), owner); err != nil {
		return domain.OwnerState{}, fmt.Errorf("select todos: %w", err)
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTodoRowToDomainTask(row))
	}

	if len(tasks) > r.capacity {
		zap.L().Warn("stored todo list exceeds the configured capacity",
			zap.String("owner", owner),
			zap.Int("stored", len(tasks)),
			zap.Int("capacity", r.capacity),
		)
	}
	return domain.RestoreOwnerState(r.capacity, tasks, nextID), nil
}

func (r *OwnerStateRepository) Save(ctx context.Context, owner string, state domain.OwnerState) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, tx.Rebind(deleteTodosQuery), owner); err != nil {
		return fmt.Errorf("delete todos: %w", err)
	}
	if _, err = tx.ExecContext(ctx, tx.Rebind(deleteOwnerQuery), owner); err != nil {
		return fmt.Errorf("delete owner: %w", err)
	}

	stats := state.Stats
	if _, err = tx.ExecContext(ctx, tx.Rebind(insertOwnerQuery),
		owner, state.NextID, stats.Total, stats.Completed, stats.Pending, stats.HighPriority,
	); err != nil {
		return fmt.Errorf("insert owner: %w", err)
	}

	for position, task := range state.Tasks.Tasks() {
		var completedAt sql.NullInt64
		if task.CompletedAt != nil {
			completedAt = sql.NullInt64{Int64: int64(*task.CompletedAt), Valid: true}
		}
		if _, err = tx.ExecContext(ctx, tx.Rebind(insertTodoQuery),
			owner,
			task.ID,
			position,
			task.Title,
			task.Description,
			task.Completed,
			uint8(task.Priority),
			uint64(task.CreatedAt),
			uint64(task.UpdatedAt),
			completedAt,
		); err != nil {
			return fmt.Errorf("insert todo %d: %w", task.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *OwnerStateRepository) Ping(ctx context.Context) error {
	if r.db == nil {
		return errors.New("database not configured")
	}
	return r.db.PingContext(ctx)
}

func mapTodoRowToDomainTask(row todoRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Completed:   row.Completed,
		Priority:    domain.Priority(row.Priority),
		CreatedAt:   domain.Moment(row.CreatedAt),
		UpdatedAt:   domain.Moment(row.UpdatedAt),
	}

	if row.CompletedAt.Valid {
		value := domain.Moment(row.CompletedAt.Int64)
		task.CompletedAt = &value
	}

	return task
}
