package domain

// TaskList is an insertion-ordered sequence of tasks that never grows past its
// capacity.
type TaskList struct {
	capacity int
	tasks    []Task
}

func NewTaskList(capacity int) TaskList {
	return TaskList{capacity: capacity, tasks: make([]Task, 0, capacity)}
}

func (l *TaskList) Capacity() int {
	return l.capacity
}

func (l *TaskList) Len() int {
	return len(l.tasks)
}

func (l *TaskList) IsFull() bool {
	return len(l.tasks) >= l.capacity
}

// Tasks returns a copy of the stored tasks in insertion order.
func (l *TaskList) Tasks() []Task {
	tasks := make([]Task, 0, len(l.tasks))
	for _, task := range l.tasks {
		tasks = append(tasks, task.clone())
	}
	return tasks
}

// Insert appends task, or returns ErrTodoListFull when the list is at capacity.
func (l *TaskList) Insert(task Task) error {
	if l.IsFull() {
		return ErrTodoListFull
	}
	l.tasks = append(l.tasks, task)
	return nil
}

// Find returns a handle to the stored task so callers can update it in place.
func (l *TaskList) Find(id uint64) (*Task, error) {
	index := l.indexOf(id)
	if index < 0 {
		return nil, ErrTodoNotFound
	}
	return &l.tasks[index], nil
}

func (l *TaskList) Remove(id uint64) error {
	index := l.indexOf(id)
	if index < 0 {
		return ErrTodoNotFound
	}
	l.tasks = append(l.tasks[:index], l.tasks[index+1:]...)
	return nil
}

func (l *TaskList) indexOf(id uint64) int {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *TaskList) clone() TaskList {
	tasks := make([]Task, 0, l.capacity)
	for _, task := range l.tasks {
		tasks = append(tasks, task.clone())
	}
	return TaskList{capacity: l.capacity, tasks: tasks}
}
