package dto

type TodoItem struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
	Priority    string  `json:"priority"`
	CreatedAt   uint64  `json:"created_at"`
	UpdatedAt   uint64  `json:"updated_at"`
	CompletedAt *uint64 `json:"completed_at,omitempty"`
}

type StatisticsItem struct {
	Total        uint32 `json:"total"`
	Completed    uint32 `json:"completed"`
	Pending      uint32 `json:"pending"`
	HighPriority uint32 `json:"high_priority"`
}

type CreateTodoRequest struct {
	Title       *string `json:"title" binding:"required"`
	Description *string `json:"description"`
	Priority    *string `json:"priority" binding:"required,oneof=low medium high"`
}

type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
}
