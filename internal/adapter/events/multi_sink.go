package events

import (
	"context"
	"errors"
	"sync"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

// MultiSink delivers each event to every sink, even when an earlier one fails.
type MultiSink struct {
	sinks []ports.EventSink
}

var _ ports.EventSink = (*MultiSink)(nil)

func NewMultiSink(sinks ...ports.EventSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (s *MultiSink) Publish(ctx context.Context, event domain.Event) error {
	var errs []error
	for _, sink := range s.sinks {
		if err := sink.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Recorder keeps every published event in memory.
type Recorder struct {
	mu     sync.Mutex
	events []domain.Event
}

var _ ports.EventSink = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Publish(_ context.Context, event domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *Recorder) Events() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]domain.Event, len(r.events))
	copy(events, r.events)
	return events
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
