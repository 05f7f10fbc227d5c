package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bagdasarian/kanban-board/internal/access"
	"github.com/bagdasarian/kanban-board/internal/domain"
	"github.com/bagdasarian/kanban-board/internal/repository"
)

const maxTitleLength = 255

type boardService struct {
	boardRepo    repository.BoardRepository
	taskRepo     repository.TaskRepository
	userRepo     repository.UserRepository
	ownerRemoval domain.OwnerRemovalPolicy
}

func NewBoardService(
	boardRepo repository.BoardRepository,
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
	ownerRemoval domain.OwnerRemovalPolicy,
) BoardService {
	return &boardService{
		boardRepo:    boardRepo,
		taskRepo:     taskRepo,
		userRepo:     userRepo,
		ownerRemoval: ownerRemoval,
	}
}

// ListBoards returns the boards the user is a member of, with counters
func (s *boardService) ListBoards(ctx context.Context, user *domain.User) ([]*domain.Board, error) {
	if err := access.Authorize(user, access.ActionList, access.BoardResource{}); err != nil {
		return nil, err
	}
	return s.boardRepo.ListForMember(ctx, user.ID)
}

// CreateBoard makes user the owner and a member alongside memberIDs
func (s *boardService) CreateBoard(ctx context.Context, user *domain.User, title string, memberIDs []int64) (*domain.Board, error) {
	if err := access.Authorize(user, access.ActionCreate, access.BoardResource{}); err != nil {
		return nil, err
	}

	v := domain.ValidationErrors{}
	title = validateTitle(v, title)

	members := domain.DedupeIDs(append([]int64{user.ID}, memberIDs...))
	if err := checkUsersExist(ctx, s.userRepo, v, "members", members[1:]); err != nil {
		return nil, err
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	board := &domain.Board{Title: title, OwnerID: user.ID}
	if err := s.boardRepo.Create(ctx, board, members); err != nil {
		if errors.Is(err, repository.ErrDanglingReference) {
			return nil, domain.NewValidationError("members", "One or more members do not exist.")
		}
		return nil, err
	}

	created, err := s.boardRepo.GetByID(ctx, board.ID)
	if err != nil {
		return nil, err
	}
	created.Stats, err = s.boardRepo.GetStats(ctx, board.ID)
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *boardService) GetBoard(ctx context.Context, user *domain.User, id int64) (*domain.Board, error) {
	board, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(user, access.ActionRetrieve, access.BoardResource{Board: board}); err != nil {
		return nil, err
	}

	board.Tasks, err = s.taskRepo.ListByBoard(ctx, id)
	if err != nil {
		return nil, err
	}

	return board, nil
}

// UpdateBoard applies the patch; a members list replaces the whole member set
func (s *boardService) UpdateBoard(ctx context.Context, user *domain.User, id int64, patch domain.BoardPatch) (*domain.Board, error) {
	board, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(user, access.ActionUpdate, access.BoardResource{Board: board}); err != nil {
		return nil, err
	}

	v := domain.ValidationErrors{}

	var title string
	if patch.Title != nil {
		title = validateTitle(v, *patch.Title)
	}

	var members []int64
	if patch.MemberIDs != nil {
		members = domain.DedupeIDs(*patch.MemberIDs)
		if !slices.Contains(members, board.OwnerID) {
			switch s.ownerRemoval {
			case domain.OwnerRemovalReject:
				v.Add("members", "The board owner cannot be removed from members.")
			case domain.OwnerRemovalRetain:
				members = append([]int64{board.OwnerID}, members...)
			}
		}
		if err := checkUsersExist(ctx, s.userRepo, v, "members", members); err != nil {
			return nil, err
		}
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	update := domain.BoardPatch{}
	if patch.Title != nil {
		update.Title = &title
	}
	if patch.MemberIDs != nil {
		update.MemberIDs = &members
	}
	if err := s.boardRepo.Update(ctx, id, update); err != nil {
		if errors.Is(err, repository.ErrDanglingReference) {
			return nil, domain.NewValidationError("members", "One or more members do not exist.")
		}
		return nil, notFound(err, "board")
	}

	return s.load(ctx, id)
}

func (s *boardService) DeleteBoard(ctx context.Context, user *domain.User, id int64) error {
	board, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := access.Authorize(user, access.ActionDelete, access.BoardResource{Board: board}); err != nil {
		return err
	}

	return notFound(s.boardRepo.Delete(ctx, id), "board")
}

func (s *boardService) load(ctx context.Context, id int64) (*domain.Board, error) {
	board, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "board")
	}
	return board, nil
}

func validateTitle(v domain.ValidationErrors, title string) string {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		v.Add("title", fieldRequired)
	case len([]rune(title)) > maxTitleLength:
		v.Add("title", fmt.Sprintf("Ensure this field has no more than %d characters.", maxTitleLength))
	}
	return title
}

// checkUsersExist records a validation error on field for every id with no user behind it.
func checkUsersExist(ctx context.Context, users repository.UserRepository, v domain.ValidationErrors, field string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	existing, err := users.ExistingIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if !slices.Contains(existing, id) {
			v.Add(field, fmt.Sprintf("Invalid pk %d - user does not exist.", id))
		}
	}
	return nil
}
