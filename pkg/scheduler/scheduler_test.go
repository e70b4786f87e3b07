package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddJobAndListJobs(t *testing.T) {
	s := NewEventScheduler()
	assert.Empty(t, s.ListJobs())

	require.NoError(t, s.AddJob("store_ping", "@every 1h", func() {}))
	assert.Error(t, s.AddJob("store_ping", "@every 1h", func() {}), "duplicate id must be rejected")

	jobs := s.ListJobs()
	require.Len(t, jobs, 1)
	require.Contains(t, jobs, "store_ping")
	assert.Equal(t, "store_ping", jobs["store_ping"].ID)
	assert.Equal(t, "@every 1h", jobs["store_ping"].CronExpr)
	assert.Nil(t, jobs["store_ping"].LastRun)
}

func TestAddJobInvalidExpression(t *testing.T) {
	s := NewEventScheduler()
	assert.Error(t, s.AddJob("broken", "not a cron", func() {}))
}

func TestStartRunsJobs(t *testing.T) {
	s := NewEventScheduler()

	var runs atomic.Int32
	require.NoError(t, s.AddJob("tick", "@every 1s", func() { runs.Add(1) }))

	s.Start()
	t.Cleanup(s.Stop)
	assert.True(t, s.IsRunning())

	assert.Eventually(t, func() bool { return runs.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	assert.NotNil(t, s.ListJobs()["tick"].LastRun)
}

func TestStopIsIdempotent(t *testing.T) {
	s := NewEventScheduler()
	s.Stop()
	assert.False(t, s.IsRunning())

	s.Start()
	s.Start()
	s.Stop()
	s.Stop()
	assert.False(t, s.IsRunning())
}
