package service

import (
	"context"

	"github.com/bagdasarian/kanban-board/internal/domain"
)

type CommentService interface {
	ListComments(ctx context.Context, user *domain.User, taskID int64) ([]*domain.Comment, error)
	CreateComment(ctx context.Context, user *domain.User, taskID int64, content string) (*domain.Comment, error)
	GetComment(ctx context.Context, user *domain.User, taskID, commentID int64) (*domain.Comment, error)
	DeleteComment(ctx context.Context, user *domain.User, taskID, commentID int64) error
}
