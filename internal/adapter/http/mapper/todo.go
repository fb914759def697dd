package mapper

import (
	"todolist/internal/adapter/http/dto"
	"todolist/internal/core/domain"
)

func ToTodoItems(tasks []domain.Task) []dto.TodoItem {
	items := make([]dto.TodoItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTodoItem(task))
	}
	return items
}

func ToTodoItem(task domain.Task) dto.TodoItem {
	item := dto.TodoItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		Priority:    task.Priority.String(),
		CreatedAt:   uint64(task.CreatedAt),
		UpdatedAt:   uint64(task.UpdatedAt),
	}

	if task.CompletedAt != nil {
		value := uint64(*task.CompletedAt)
		item.CompletedAt = &value
	}

	return item
}

func ToStatisticsItem(stats domain.Statistics) dto.StatisticsItem {
	return dto.StatisticsItem{
		Total:        stats.Total,
		Completed:    stats.Completed,
		Pending:      stats.Pending,
		HighPriority: stats.HighPriority,
	}
}
