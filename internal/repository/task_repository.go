package repository

import (
	"context"

	"github.com/bagdasarian/kanban-board/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int64) error
	ListByBoard(ctx context.Context, boardID int64) ([]*domain.Task, error)
	ListForMember(ctx context.Context, userID int64) ([]*domain.Task, error)
	ListByAssignee(ctx context.Context, userID int64) ([]*domain.Task, error)
	ListByReviewer(ctx context.Context, userID int64) ([]*domain.Task, error)
}
