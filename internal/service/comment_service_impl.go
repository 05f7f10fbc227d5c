package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bagdasarian/kanban-board/internal/access"
	"github.com/bagdasarian/kanban-board/internal/domain"
	"github.com/bagdasarian/kanban-board/internal/repository"
)

type commentService struct {
	commentRepo repository.CommentRepository
	taskRepo    repository.TaskRepository
	boardRepo   repository.BoardRepository
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	taskRepo repository.TaskRepository,
	boardRepo repository.BoardRepository,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		boardRepo:   boardRepo,
	}
}

// ListComments returns the comments of a task, oldest first
func (s *commentService) ListComments(ctx context.Context, user *domain.User, taskID int64) ([]*domain.Comment, error) {
	board, err := s.boardOf(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(user, access.ActionList, access.CommentResource{Board: board}); err != nil {
		return nil, err
	}

	return s.commentRepo.ListByTask(ctx, taskID)
}

// CreateComment attaches a comment authored by user
func (s *commentService) CreateComment(ctx context.Context, user *domain.User, taskID int64, content string) (*domain.Comment, error) {
	board, err := s.boardOf(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(user, access.ActionCreate, access.CommentResource{Board: board}); err != nil {
		return nil, err
	}

	if strings.TrimSpace(content) == "" {
		return nil, domain.NewValidationError("content", fieldRequired)
	}

	comment := &domain.Comment{
		TaskID:     taskID,
		AuthorID:   user.ID,
		AuthorName: user.Fullname,
		Content:    content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrDanglingReference) {
			return nil, domain.NewNotFoundError("task")
		}
		return nil, err
	}

	return comment, nil
}

func (s *commentService) GetComment(ctx context.Context, user *domain.User, taskID, commentID int64) (*domain.Comment, error) {
	board, err := s.boardOf(ctx, taskID)
	if err != nil {
		return nil, err
	}

	comment, err := s.load(ctx, taskID, commentID)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(user, access.ActionRetrieve, access.CommentResource{Comment: comment, Board: board}); err != nil {
		return nil, err
	}

	return comment, nil
}

// DeleteComment is allowed to the author only
func (s *commentService) DeleteComment(ctx context.Context, user *domain.User, taskID, commentID int64) error {
	board, err := s.boardOf(ctx, taskID)
	if err != nil {
		return err
	}

	comment, err := s.load(ctx, taskID, commentID)
	if err != nil {
		return err
	}
	if err := access.Authorize(user, access.ActionDelete, access.CommentResource{Comment: comment, Board: board}); err != nil {
		return err
	}

	return notFound(s.commentRepo.Delete(ctx, commentID), "comment")
}

func (s *commentService) boardOf(ctx context.Context, taskID int64) (*domain.Board, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, notFound(err, "task")
	}

	board, err := s.boardRepo.GetByID(ctx, task.BoardID)
	if err != nil {
		return nil, notFound(err, "board")
	}

	return board, nil
}

// load fetches the comment and hides it when it belongs to another task.
func (s *commentService) load(ctx context.Context, taskID, commentID int64) (*domain.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, notFound(err, "comment")
	}
	if comment.TaskID != taskID {
		return nil, domain.NewNotFoundError("comment")
	}
	return comment, nil
}
