package domain

import "fmt"

// Moment is an opaque logical timestamp supplied by the clock.
type Moment uint64

type Priority uint8

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) Valid() bool {
	return p <= PriorityHigh
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return fmt.Sprintf("priority(%d)", uint8(p))
	}
}

// ParsePriority accepts the textual form produced by Priority.String.
func ParsePriority(value string) (Priority, error) {
	switch value {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	default:
		return 0, ErrInvalidPriority
	}
}

type Task struct {
	ID          uint64
	Title       string
	Description string
	Completed   bool
	Priority    Priority
	CreatedAt   Moment
	UpdatedAt   Moment
	CompletedAt *Moment
}

func (t Task) clone() Task {
	if t.CompletedAt != nil {
		value := *t.CompletedAt
		t.CompletedAt = &value
	}
	return t
}

type Statistics struct {
	Total        uint32
	Completed    uint32
	Pending      uint32
	HighPriority uint32
}

type CreateTodoInput struct {
	Title       string
	Description string
	Priority    Priority
}

// TodoPatch lists the fields an update replaces. A nil field is left unchanged.
type TodoPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
}

func (p TodoPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil
}

// Limits are the deployment-wide bounds applied to every owner.
type Limits struct {
	MaxTitleLength       int
	MaxDescriptionLength int
	MaxTodosPerOwner     int
}

const (
	DefaultMaxTitleLength       = 100
	DefaultMaxDescriptionLength = 500
	DefaultMaxTodosPerOwner     = 50
)

func DefaultLimits() Limits {
	return Limits{
		MaxTitleLength:       DefaultMaxTitleLength,
		MaxDescriptionLength: DefaultMaxDescriptionLength,
		MaxTodosPerOwner:     DefaultMaxTodosPerOwner,
	}
}

// ValidateTitle checks the byte length of title against the limit.
func (l Limits) ValidateTitle(title string) error {
	if len(title) > l.MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func (l Limits) ValidateDescription(description string) error {
	if len(description) > l.MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}
