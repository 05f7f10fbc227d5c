package repository

import (
	"context"

	"github.com/bagdasarian/kanban-board/internal/domain"
)

type BoardRepository interface {
	// Create inserts the board and its member rows in one transaction.
	Create(ctx context.Context, board *domain.Board, memberIDs []int64) error
	// GetByID loads the board with owner and members, without tasks.
	GetByID(ctx context.Context, id int64) (*domain.Board, error)
	GetStats(ctx context.Context, id int64) (domain.BoardStats, error)
	ListForMember(ctx context.Context, userID int64) ([]*domain.Board, error)
	// Update applies the title and the member set atomically.
	Update(ctx context.Context, id int64, patch domain.BoardPatch) error
	Delete(ctx context.Context, id int64) error
}
