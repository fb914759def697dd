package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"todolist/internal/core/domain"
)

func TestSystemClock_ReportsUnixMillis(t *testing.T) {
	before := domain.Moment(time.Now().UnixMilli())
	now := SystemClock{}.Now()
	after := domain.Moment(time.Now().UnixMilli())

	assert.GreaterOrEqual(t, now, before)
	assert.LessOrEqual(t, now, after)
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(1000)
	assert.Equal(t, domain.Moment(1000), c.Now())

	c.Set(2000)
	assert.Equal(t, domain.Moment(2000), c.Now())

	assert.Equal(t, domain.Moment(2500), c.Advance(500))
	assert.Equal(t, domain.Moment(2500), c.Now())
}
