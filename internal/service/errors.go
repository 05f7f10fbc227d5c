package service

import (
	"errors"

	"github.com/bagdasarian/kanban-board/internal/domain"
	"github.com/bagdasarian/kanban-board/internal/repository"
)

// notFound turns a repository miss into a NOT_FOUND domain error naming resource.
func notFound(err error, resource string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewNotFoundError(resource)
	}
	return err
}
