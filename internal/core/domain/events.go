package domain

type EventKind string

const (
	EventTodoCreated           EventKind = "TodoCreated"
	EventTodoUpdated           EventKind = "TodoUpdated"
	EventTodoCompletionToggled EventKind = "TodoCompletionToggled"
	EventTodoDeleted           EventKind = "TodoDeleted"
)

// Event describes a committed mutation. Completed is only set for
// EventTodoCompletionToggled.
type Event struct {
	Kind      EventKind `json:"kind"`
	Owner     string    `json:"owner"`
	TodoID    uint64    `json:"todo_id"`
	Completed *bool     `json:"completed,omitempty"`
}

func TodoCreated(owner string, id uint64) Event {
	return Event{Kind: EventTodoCreated, Owner: owner, TodoID: id}
}

func TodoUpdated(owner string, id uint64) Event {
	return Event{Kind: EventTodoUpdated, Owner: owner, TodoID: id}
}

func TodoCompletionToggled(owner string, id uint64, completed bool) Event {
	return Event{Kind: EventTodoCompletionToggled, Owner: owner, TodoID: id, Completed: &completed}
}

func TodoDeleted(owner string, id uint64) Event {
	return Event{Kind: EventTodoDeleted, Owner: owner, TodoID: id}
}
