package service

import (
	"context"

	"github.com/bagdasarian/kanban-board/internal/domain"
)

type TaskService interface {
	// ListTasks returns tasks on every board the user belongs to.
	ListTasks(ctx context.Context, user *domain.User) ([]*domain.Task, error)
	AssignedToMe(ctx context.Context, user *domain.User) ([]*domain.Task, error)
	Reviewing(ctx context.Context, user *domain.User) ([]*domain.Task, error)
	CreateTask(ctx context.Context, user *domain.User, input domain.TaskInput) (*domain.Task, error)
	GetTask(ctx context.Context, user *domain.User, id int64) (*domain.Task, error)
	UpdateTask(ctx context.Context, user *domain.User, id int64, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTask(ctx context.Context, user *domain.User, id int64) error
}
