package repositories

import (
	"context"

	"task-tracker/domain/models"
)

type SortDirection int

const (
	SortAscending  SortDirection = 1
	SortDescending SortDirection = -1
)

// TaskRepository is the narrow view of the document store the task services need.
// FindByID, FindByIDAndUpdate and FindByIDAndDelete return (nil, nil) when no document matches.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	Find(ctx context.Context) ([]*models.Task, error)
	FindSorted(ctx context.Context, field string, direction SortDirection) ([]*models.Task, error)
	FindByID(ctx context.Context, id string) (*models.Task, error)
	FindByIDAndUpdate(ctx context.Context, id string, task *models.Task) (*models.Task, error)
	FindByIDAndDelete(ctx context.Context, id string) (*models.Task, error)
	AggregateByStatusRank(ctx context.Context) ([]*models.Task, error)
	Ping(ctx context.Context) error
}
