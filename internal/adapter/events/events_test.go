package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"todolist/internal/core/domain"
)

type failingSink struct {
	err error
}

func (s failingSink) Publish(context.Context, domain.Event) error {
	return s.err
}

func TestLogSink_WritesOneLinePerEvent(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sink := NewLogSink(zap.New(core))

	require.NoError(t, sink.Publish(context.Background(), domain.TodoCreated("alice", 3)))
	require.NoError(t, sink.Publish(context.Background(), domain.TodoCompletionToggled("alice", 3, true)))

	entries := logs.All()
	require.Len(t, entries, 2)

	created := entries[0].ContextMap()
	assert.Equal(t, "todo event", entries[0].Message)
	assert.Equal(t, "TodoCreated", created["kind"])
	assert.Equal(t, "alice", created["owner"])
	assert.Equal(t, uint64(3), created["todo_id"])
	assert.NotContains(t, created, "completed")

	toggled := entries[1].ContextMap()
	assert.Equal(t, "TodoCompletionToggled", toggled["kind"])
	assert.Equal(t, true, toggled["completed"])
}

func TestMultiSink_DeliversToAllAndJoinsErrors(t *testing.T) {
	first := NewRecorder()
	second := NewRecorder()
	brokerErr := errors.New("broker down")

	sink := NewMultiSink(first, failingSink{err: brokerErr}, second)
	err := sink.Publish(context.Background(), domain.TodoDeleted("alice", 1))

	require.ErrorIs(t, err, brokerErr)
	assert.Equal(t, []domain.Event{domain.TodoDeleted("alice", 1)}, first.Events())
	assert.Equal(t, []domain.Event{domain.TodoDeleted("alice", 1)}, second.Events())
}

func TestMultiSink_NoSinks(t *testing.T) {
	assert.NoError(t, NewMultiSink().Publish(context.Background(), domain.TodoCreated("alice", 0)))
}

func TestRecorder_EventsReturnsCopy(t *testing.T) {
	recorder := NewRecorder()
	require.NoError(t, recorder.Publish(context.Background(), domain.TodoCreated("alice", 0)))

	events := recorder.Events()
	events[0].Owner = "mallory"

	assert.Equal(t, "alice", recorder.Events()[0].Owner)

	recorder.Reset()
	assert.Empty(t, recorder.Events())
}
