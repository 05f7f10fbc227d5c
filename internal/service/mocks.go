package service

import (
	"context"

	"github.com/bagdasarian/kanban-board/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board, memberIDs []int64) error {
	args := m.Called(ctx, board, memberIDs)
	return args.Error(0)
}

func (m *MockBoardRepository) GetByID(ctx context.Context, id int64) (*domain.Board, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}

func (m *MockBoardRepository) GetStats(ctx context.Context, id int64) (domain.BoardStats, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.BoardStats), args.Error(1)
}

func (m *MockBoardRepository) ListForMember(ctx context.Context, userID int64) ([]*domain.Board, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Board), args.Error(1)
}

func (m *MockBoardRepository) Update(ctx context.Context, id int64, patch domain.BoardPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockBoardRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepository) ListByBoard(ctx context.Context, boardID int64) ([]*domain.Task, error) {
	return m.list(m.Called(ctx, boardID))
}

func (m *MockTaskRepository) ListForMember(ctx context.Context, userID int64) ([]*domain.Task, error) {
	return m.list(m.Called(ctx, userID))
}

func (m *MockTaskRepository) ListByAssignee(ctx context.Context, userID int64) ([]*domain.Task, error) {
	return m.list(m.Called(ctx, userID))
}

func (m *MockTaskRepository) ListByReviewer(ctx context.Context, userID int64) ([]*domain.Task, error) {
	return m.list(m.Called(ctx, userID))
}

func (m *MockTaskRepository) list(args mock.Arguments) ([]*domain.Task, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByTask(ctx context.Context, taskID int64) ([]*domain.Comment, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, input domain.Registration) (*domain.Session, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockAuthService) CheckEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockBoardService struct {
	mock.Mock
}

func (m *MockBoardService) ListBoards(ctx context.Context, user *domain.User) ([]*domain.Board, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Board), args.Error(1)
}

func (m *MockBoardService) CreateBoard(ctx context.Context, user *domain.User, title string, memberIDs []int64) (*domain.Board, error) {
	args := m.Called(ctx, user, title, memberIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}

func (m *MockBoardService) GetBoard(ctx context.Context, user *domain.User, id int64) (*domain.Board, error) {
	args := m.Called(ctx, user, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}

func (m *MockBoardService) UpdateBoard(ctx context.Context, user *domain.User, id int64, patch domain.BoardPatch) (*domain.Board, error) {
	args := m.Called(ctx, user, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Board), args.Error(1)
}

func (m *MockBoardService) DeleteBoard(ctx context.Context, user *domain.User, id int64) error {
	args := m.Called(ctx, user, id)
	return args.Error(0)
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) ListTasks(ctx context.Context, user *domain.User) ([]*domain.Task, error) {
	return m.tasks(m.Called(ctx, user))
}

func (m *MockTaskService) AssignedToMe(ctx context.Context, user *domain.User) ([]*domain.Task, error) {
	return m.tasks(m.Called(ctx, user))
}

func (m *MockTaskService) Reviewing(ctx context.Context, user *domain.User) ([]*domain.Task, error) {
	return m.tasks(m.Called(ctx, user))
}

func (m *MockTaskService) CreateTask(ctx context.Context, user *domain.User, input domain.TaskInput) (*domain.Task, error) {
	return m.task(m.Called(ctx, user, input))
}

func (m *MockTaskService) GetTask(ctx context.Context, user *domain.User, id int64) (*domain.Task, error) {
	return m.task(m.Called(ctx, user, id))
}

func (m *MockTaskService) UpdateTask(ctx context.Context, user *domain.User, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	return m.task(m.Called(ctx, user, id, patch))
}

func (m *MockTaskService) DeleteTask(ctx context.Context, user *domain.User, id int64) error {
	args := m.Called(ctx, user, id)
	return args.Error(0)
}

func (m *MockTaskService) task(args mock.Arguments) (*domain.Task, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskService) tasks(args mock.Arguments) ([]*domain.Task, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListComments(ctx context.Context, user *domain.User, taskID int64) ([]*domain.Comment, error) {
	args := m.Called(ctx, user, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

func (m *MockCommentService) CreateComment(ctx context.Context, user *domain.User, taskID int64, content string) (*domain.Comment, error) {
	args := m.Called(ctx, user, taskID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentService) GetComment(ctx context.Context, user *domain.User, taskID, commentID int64) (*domain.Comment, error) {
	args := m.Called(ctx, user, taskID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, user *domain.User, taskID, commentID int64) error {
	args := m.Called(ctx, user, taskID, commentID)
	return args.Error(0)
}
