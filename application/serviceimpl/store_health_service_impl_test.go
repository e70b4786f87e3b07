package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/domain/models"
	"task-tracker/pkg/scheduler"
)

type fakeScheduler struct {
	jobs map[string]string
	fns  map[string]func()
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{jobs: map[string]string{}, fns: map[string]func(){}}
}

func (f *fakeScheduler) Start()          {}
func (f *fakeScheduler) Stop()           {}
func (f *fakeScheduler) IsRunning() bool { return false }
func (f *fakeScheduler) AddJob(id, cronExpr string, task func()) error {
	f.jobs[id] = cronExpr
	f.fns[id] = task
	return nil
}
func (f *fakeScheduler) ListJobs() map[string]*scheduler.JobInfo { return nil }

func TestStoreHealth_InitialStateUnknown(t *testing.T) {
	svc := NewStoreHealthService(StoreHealthConfig{}, newFakeTaskRepository(), newFakeScheduler())
	assert.Equal(t, models.StoreHealthUnknown, svc.Current().Status)
}

func TestStoreHealth_RegisterHealthJob(t *testing.T) {
	sched := newFakeScheduler()
	repo := newFakeTaskRepository()
	svc := NewStoreHealthService(StoreHealthConfig{CheckInterval: 15 * time.Second}, repo, sched)

	require.NoError(t, svc.RegisterHealthJob())
	assert.Equal(t, "@every 15s", sched.jobs[storeHealthJobID])

	sched.fns[storeHealthJobID]()
	assert.Equal(t, models.StoreHealthHealthy, svc.Current().Status)
	assert.Equal(t, 1, repo.callCount("Ping"))
}

func TestStoreHealth_RunCheckTransitions(t *testing.T) {
	repo := newFakeTaskRepository()
	svc := NewStoreHealthService(StoreHealthConfig{}, repo, newFakeScheduler())

	result := svc.RunCheck(context.Background())
	assert.Equal(t, models.StoreHealthHealthy, result.Status)
	assert.NotNil(t, result.LastCheckedAt)
	assert.Empty(t, result.Error)

	repo.err = errStoreDown
	result = svc.RunCheck(context.Background())
	assert.Equal(t, models.StoreHealthUnhealthy, result.Status)
	assert.Equal(t, errStoreDown.Error(), result.Error)
	assert.Equal(t, result, svc.Current())
}
