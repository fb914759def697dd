package events

import (
	"context"

	"go.uber.org/zap"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

type LogSink struct {
	logger *zap.Logger
}

var _ ports.EventSink = (*LogSink)(nil)

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Publish(_ context.Context, event domain.Event) error {
	fields := []zap.Field{
		zap.String("kind", string(event.Kind)),
		zap.String("owner", event.Owner),
		zap.Uint64("todo_id", event.TodoID),
	}
	if event.Completed != nil {
		fields = append(fields, zap.Bool("completed", *event.Completed))
	}
	s.logger.Info("todo event", fields...)
	return nil
}
