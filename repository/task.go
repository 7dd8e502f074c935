package repository

import (
	"context"

	"github.com/taskhive/backend/domain"
)

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Search(ctx context.Context, criteria TaskCriteria, page PageRequest) (Page[domain.Task], error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}
