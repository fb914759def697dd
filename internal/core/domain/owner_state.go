package domain

// OwnerState bundles everything scoped to one owner: the task list, the next
// identifier and the cached statistics.
type OwnerState struct {
	Tasks  TaskList
	NextID uint64
	Stats  Statistics
}

func NewOwnerState(capacity int) OwnerState {
	return OwnerState{Tasks: NewTaskList(capacity)}
}

// RestoreOwnerState rebuilds a state from persisted parts. A stored list longer
// than capacity is kept whole, with the list's capacity raised to its length.
func RestoreOwnerState(capacity int, tasks []Task, nextID uint64) OwnerState {
	if len(tasks) > capacity {
		capacity = len(tasks)
	}
	state := NewOwnerState(capacity)
	for _, task := range tasks {
		state.Tasks.tasks = append(state.Tasks.tasks, task.clone())
	}
	state.NextID = nextID
	state.RecomputeStatistics()
	return state
}

// AllocateID returns the current counter value and advances it.
func (s *OwnerState) AllocateID() uint64 {
	id := s.NextID
	s.NextID++
	return id
}

func (s *OwnerState) RecomputeStatistics() {
	s.Stats = ComputeStatistics(s.Tasks.tasks)
}

// Clone returns a deep copy that shares no memory with s.
func (s *OwnerState) Clone() OwnerState {
	return OwnerState{
		Tasks:  s.Tasks.clone(),
		NextID: s.NextID,
		Stats:  s.Stats,
	}
}

func ComputeStatistics(tasks []Task) Statistics {
	var stats Statistics
	for _, task := range tasks {
		stats.Total++
		if task.Completed {
			stats.Completed++
			continue
		}
		if task.Priority == PriorityHigh {
			stats.HighPriority++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats
}
