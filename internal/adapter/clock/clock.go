package clock

import (
	"sync"
	"time"

	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
)

// SystemClock reports wall-clock time as Unix milliseconds.
type SystemClock struct{}

var _ ports.Clock = SystemClock{}

func (SystemClock) Now() domain.Moment {
	return domain.Moment(time.Now().UnixMilli())
}

// ManualClock only moves when told to.
type ManualClock struct {
	mu  sync.Mutex
	now domain.Moment
}

var _ ports.Clock = (*ManualClock)(nil)

func NewManualClock(start domain.Moment) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() domain.Moment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) Set(now domain.Moment) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *ManualClock) Advance(delta domain.Moment) domain.Moment {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += delta
	return c.now
}
