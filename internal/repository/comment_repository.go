package repository

import (
	"context"

	"github.com/bagdasarian/kanban-board/internal/domain"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)
	ListByTask(ctx context.Context, taskID int64) ([]*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}
