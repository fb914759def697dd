package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskList_InsertRespectsCapacity(t *testing.T) {
	list := NewTaskList(2)

	require.NoError(t, list.Insert(Task{ID: 0}))
	require.NoError(t, list.Insert(Task{ID: 1}))
	require.True(t, list.IsFull())

	err := list.Insert(Task{ID: 2})
	require.ErrorIs(t, err, ErrTodoListFull)
	assert.Equal(t, 2, list.Len())
}

func TestTaskList_ZeroCapacityRejectsEverything(t *testing.T) {
	list := NewTaskList(0)
	require.ErrorIs(t, list.Insert(Task{ID: 0}), ErrTodoListFull)
	assert.Equal(t, 0, list.Len())
}

func TestTaskList_RemoveKeepsOrderAndIDs(t *testing.T) {
	list := NewTaskList(5)
	for id := uint64(0); id < 4; id++ {
		require.NoError(t, list.Insert(Task{ID: id}))
	}

	require.NoError(t, list.Remove(1))

	ids := make([]uint64, 0, list.Len())
	for _, task := range list.Tasks() {
		ids = append(ids, task.ID)
	}
	assert.Equal(t, []uint64{0, 2, 3}, ids)
	require.ErrorIs(t, list.Remove(1), ErrTodoNotFound)
}

func TestTaskList_FindReturnsMutableHandle(t *testing.T) {
	list := NewTaskList(3)
	require.NoError(t, list.Insert(Task{ID: 7, Title: "before"}))

	task, err := list.Find(7)
	require.NoError(t, err)
	task.Title = "after"

	assert.Equal(t, "after", list.Tasks()[0].Title)

	_, err = list.Find(8)
	require.ErrorIs(t, err, ErrTodoNotFound)
}

func TestTaskList_TasksReturnsCopy(t *testing.T) {
	completedAt := Moment(10)
	list := NewTaskList(3)
	require.NoError(t, list.Insert(Task{ID: 1, Completed: true, CompletedAt: &completedAt}))

	tasks := list.Tasks()
	tasks[0].Title = "changed"
	*tasks[0].CompletedAt = 99

	stored, err := list.Find(1)
	require.NoError(t, err)
	assert.Empty(t, stored.Title)
	assert.Equal(t, Moment(10), *stored.CompletedAt)
}
