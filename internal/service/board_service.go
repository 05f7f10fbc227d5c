package service

import (
	"context"

	"github.com/bagdasarian/kanban-board/internal/domain"
)

type BoardService interface {
	ListBoards(ctx context.Context, user *domain.User) ([]*domain.Board, error)
	CreateBoard(ctx context.Context, user *domain.User, title string, memberIDs []int64) (*domain.Board, error)
	// GetBoard returns the board with members and tasks.
	GetBoard(ctx context.Context, user *domain.User, id int64) (*domain.Board, error)
	UpdateBoard(ctx context.Context, user *domain.User, id int64, patch domain.BoardPatch) (*domain.Board, error)
	DeleteBoard(ctx context.Context, user *domain.User, id int64) error
}
