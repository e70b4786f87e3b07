package serviceimpl

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"task-tracker/domain/models"
	"task-tracker/domain/repositories"
)

var errStoreDown = errors.New("server selection error: connection refused")

// fakeTaskRepository keeps documents in insertion order, like a collection
// scanned without a sort.
type fakeTaskRepository struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	tasks map[primitive.ObjectID]models.Task

	err   error
	calls map[string]int
}

func newFakeTaskRepository() *fakeTaskRepository {
	return &fakeTaskRepository{
		tasks: make(map[primitive.ObjectID]models.Task),
		calls: make(map[string]int),
	}
}

func (r *fakeTaskRepository) record(op string) error {
	r.calls[op]++
	return r.err
}

func (r *fakeTaskRepository) totalCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0
	for _, n := range r.calls {
		total += n
	}
	return total
}

func (r *fakeTaskRepository) callCount(op string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[op]
}

func (r *fakeTaskRepository) seed(task models.Task) *models.Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	r.order = append(r.order, task.ID)
	r.tasks[task.ID] = task
	out := task
	return &out
}

func (r *fakeTaskRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

func (r *fakeTaskRepository) all() []*models.Task {
	out := make([]*models.Task, 0, len(r.order))
	for _, id := range r.order {
		if task, ok := r.tasks[id]; ok {
			t := task
			out = append(out, &t)
		}
	}
	return out
}

func (r *fakeTaskRepository) Create(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("Create"); err != nil {
		return err
	}
	task.ID = primitive.NewObjectID()
	task.PrepareForInsert(time.Now().UTC())
	r.order = append(r.order, task.ID)
	r.tasks[task.ID] = *task
	return nil
}

func (r *fakeTaskRepository) Find(_ context.Context) ([]*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("Find"); err != nil {
		return nil, err
	}
	return r.all(), nil
}

func (r *fakeTaskRepository) FindSorted(_ context.Context, field string, direction repositories.SortDirection) ([]*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("FindSorted"); err != nil {
		return nil, err
	}
	if field != "dueDate" {
		return nil, errors.New("unsupported sort field " + field)
	}
	tasks := r.all()
	sort.SliceStable(tasks, func(i, j int) bool {
		if direction == repositories.SortDescending {
			return tasks[i].DueDate.After(tasks[j].DueDate)
		}
		return tasks[i].DueDate.Before(tasks[j].DueDate)
	})
	return tasks, nil
}

func (r *fakeTaskRepository) AggregateByStatusRank(_ context.Context) ([]*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("AggregateByStatusRank"); err != nil {
		return nil, err
	}
	tasks := r.all()
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Status.Rank() < tasks[j].Status.Rank()
	})
	return tasks, nil
}

func (r *fakeTaskRepository) lookup(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	_, ok := r.tasks[oid]
	return oid, ok
}

func (r *fakeTaskRepository) FindByID(_ context.Context, id string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("FindByID"); err != nil {
		return nil, err
	}
	oid, ok := r.lookup(id)
	if !ok {
		return nil, nil
	}
	task := r.tasks[oid]
	return &task, nil
}

func (r *fakeTaskRepository) FindByIDAndUpdate(_ context.Context, id string, task *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("FindByIDAndUpdate"); err != nil {
		return nil, err
	}
	oid, ok := r.lookup(id)
	if !ok {
		return nil, nil
	}
	stored := r.tasks[oid]
	stored.Title = task.Title
	stored.Description = task.Description
	stored.DueDate = task.DueDate
	stored.Status = task.Status
	stored.PrepareForUpdate(time.Now().UTC())
	r.tasks[oid] = stored
	out := stored
	return &out, nil
}

func (r *fakeTaskRepository) FindByIDAndDelete(_ context.Context, id string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.record("FindByIDAndDelete"); err != nil {
		return nil, err
	}
	oid, ok := r.lookup(id)
	if !ok {
		return nil, nil
	}
	task := r.tasks[oid]
	delete(r.tasks, oid)
	return &task, nil
}

func (r *fakeTaskRepository) Ping(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.record("Ping")
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []*models.TaskEvent
	err    error
}

func (p *recordingPublisher) PublishTaskEvent(_ context.Context, event *models.TaskEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []models.TaskEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.TaskEventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
