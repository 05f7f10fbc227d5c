package repository

import (
	"context"

	"github.com/bagdasarian/kanban-board/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// ExistingIDs returns the subset of ids that belong to registered users.
	ExistingIDs(ctx context.Context, ids []int64) ([]int64, error)
	Delete(ctx context.Context, id int64) error
}
