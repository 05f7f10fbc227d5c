package service

import (
	"context"

	"github.com/bagdasarian/kanban-board/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, input domain.Registration) (*domain.Session, error)
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	CheckEmail(ctx context.Context, email string) (*domain.User, error)
	// Authenticate resolves a bearer token to its user or returns domain.ErrUnauthenticated.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
