package services

import (
	"context"

	"task-tracker/domain/models"
)

type StoreHealthService interface {
	RegisterHealthJob() error
	RunCheck(ctx context.Context) models.StoreHealth
	Current() models.StoreHealth
}
