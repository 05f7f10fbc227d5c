package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/kanban-board/internal/domain"
	"github.com/bagdasarian/kanban-board/internal/repository"
)

type taskMocks struct {
	tasks  *MockTaskRepository
	boards *MockBoardRepository
	users  *MockUserRepository
}

func setupTaskService(policy domain.AssigneePolicy) (TaskService, taskMocks) {
	m := taskMocks{
		tasks:  new(MockTaskRepository),
		boards: new(MockBoardRepository),
		users:  new(MockUserRepository),
	}
	return NewTaskService(m.tasks, m.boards, m.users, policy), m
}

// bugTask lives on sprintBoard and is assigned to Bob.
func bugTask() *domain.Task {
	return &domain.Task{
		ID:         5,
		BoardID:    10,
		Title:      "Fix bug",
		Status:     domain.StatusToDo,
		Priority:   domain.PriorityHigh,
		DueDate:    time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC),
		AssigneeID: int64Ptr(bob.ID),
		Assignee:   bob,
	}
}

func TestTaskService_CreateTask(t *testing.T) {
	t.Run("defaults status and priority", func(t *testing.T) {
		service, m := setupTaskService(domain.AssigneeLoose)

		m.boards.On("GetByID", mock.Anything, int64(10)).Return(sprintBoard(), nil).Once()
		m.users.On("ExistingIDs", mock.Anything, []int64{2}).Return([]int64{2}, nil).Once()
		m.tasks.On("Create", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
			return task.Status == domain.StatusToDo &&
				task.Priority == domain.PriorityMedium &&
				task.DueDate.Equal(time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC))
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Task).ID = 5
		}).Return(nil).Once()
		m.tasks.On("GetByID", mock.Anything, int64(5)).Return(bugTask(), nil).Once()

		task, err := service.CreateTask(context.Background(), alice, domain.TaskInput{
			BoardID:    int64Ptr(10),
			Title:      "Fix bug",
			DueDate:    "2026-11-03",
			AssigneeID: int64Ptr(bob.ID),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(5), task.ID)
		m.tasks.AssertExpectations(t)
	})

	t.Run("board is required", func(t *testing.T) {
		service, _ := setupTaskService(domain.AssigneeLoose)

		_, err := service.CreateTask(context.Background(), alice, domain.TaskInput{Title: "x"})

		requireFieldError(t, err, "board")
	})

	t.Run("missing board", func(t *testing.T) {
		service, m := setupTaskService(domain.AssigneeLoose)

		m.boards.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound).Once()

		_, err := service.CreateTask(context.Background(), alice, domain.TaskInput{BoardID: int64Ptr(404)})

		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("creator must be a member even when assigning members", func(t *testing.T) {
		service, m := setupTaskService(domain.AssigneeLoose)

		m.boards.On("GetByID", mock.Anything, int64(10)).Return(sprintBoard(), nil).Once()

		_, err := service.CreateTask(context.Background(), carol, domain.TaskInput{
			BoardID:    int64Ptr(10),
			Title:      "Sneaky",
			DueDate:    "2026-11-03",
			AssigneeID: int64Ptr(bob.ID),
		})

		assert.True(t, errors.Is(err, domain.ErrForbidden))
		m.tasks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid fields", func(t *testing.T) {
		service, m := setupTaskService(domain.AssigneeLoose)

		m.boards.On("GetByID", mock.Anything, int64(10)).Return(sprintBoard(), nil).Once()
		m.users.On("ExistingIDs", mock.Anything, []int64{99}).Return([]int64{}, nil).Once()

		_, err := service.CreateTask(context.Background(), alice, domain.TaskInput{
			BoardID:    int64Ptr(10),
			Status:     statusPtr("blocked"),
			Priority:   priorityPtr("urgent"),
			DueDate:    "03.11.2026",
			AssigneeID: int64Ptr(99),
		})

		requireFieldError(t, err, "title", "status", "priority", "due_date", "assignee_id")
	})

	t.Run("empty status and priority are not defaults", func(t *testing.T) {
		service, m := setupTaskService(domain.AssigneeLoose)

		m.boards.On("GetByID", mock.Anything, int64(10)).Return(sprintBoard(), nil).Once()

		_, err := service.CreateTask(context.Background(), alice, domain.TaskInput{
			BoardID:  int64Ptr(10),
			Title:    "Fix bug",
			Status:   statusPtr(""),
			Priority: priorityPtr(""),
			DueDate:  "2026-11-03",
		})

		requireFieldError(t, err, "status", "priority")
		m.tasks.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("loose policy accepts a non-member reviewer", func(t *testing.T) {
		service, m := setupTaskService(domain.AssigneeLoose)

		m.boards.On("GetByID", mock.Anything, int64(10)).Return(sprintBoard(), nil).Once()
		m.users.On("ExistingIDs", mock.Anything, []int64{3}).Return([]int64{3}, nil).Once()
		m.tasks.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		m.tasks.On("GetByID", mock.Anything, mock.Anything).Return(bugTask(), nil).Once()

		_, err := service.CreateTask(context.Background(), alice, domain.TaskInput{
			BoardID:    int64Ptr(10),
			Title:      "Review me",
			DueDate:    "2026-11-03",
			ReviewerID: int64Ptr(carol.ID),
		})

		require.NoError(t, err)
	})

	t.Run("members policy rejects a non-member reviewer", func(t *testing.T) {
		service, m := setupTaskService(domain.AssigneeMembers)

		m.boards.On("GetByID", mock.Anything, int64(10)).Return(sprintBoard(), nil).Once()
		m.users.On("ExistingIDs", mock.Anything, []int64{3}).Return([]int64{3}, nil).Once()

		_, err := service.CreateTask(context.Background(), alice, domain.TaskInput{
			BoardID:    int64Ptr(10),
			Title:      "Review me",
			DueDate:    "2026-11-03",
			ReviewerID: int64Ptr(carol.ID),
		})

		requireFieldError(t, err, "reviewer_id")
	})
}

func TestTaskService_GetTask(t *testing.T) {
	service, m := setupTaskService(domain.AssigneeLoose)

	m.tasks.On("GetByID", mock.Anything, int64(5)).Return(bugTask(), nil)
	m.boards.On("GetByID", mock.Anything, int64(10)).Return(sprintBoard(), nil)
	m.tasks.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

	task, err := service.GetTask(context.Background(), bob, 5)
	require.NoError(t, err)
	assert.Equal(t, "Fix bug", task.Title)

	_, err = service.GetTask(context.Background(), carol, 5)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	_, err = service.GetTask(context.Background(), bob, 404)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestTaskService_UpdateTask(t *testing.T) {
	t.Run("explicit null clears the assignee", func(t *testing.T) {
		service, m := setupTaskService(domain.AssigneeLoose)

		m.tasks.On("GetByID", mock.Anything, int64(5)).Return(bugTask(), nil).Once()
		m.boards.On("GetByID", mock.Anything, int64(10)).Return(sprintBoard(), nil).Once()
		m.tasks.On("Update", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
			return task.AssigneeID == nil && task.Status == domain.StatusReview
		})).Return(nil).Once()
		m.tasks.On("GetByID", mock.Anything, int64(5)).Return(bugTask(), nil).Once()

		status := domain.StatusReview
		_, err := service.UpdateTask(context.Background(), bob, 5, domain.TaskPatch{
			Status:     &status,
			AssigneeID: domain.OptionalID{Set: true},
		})

		require.NoError(t, err)
		m.tasks.AssertExpectations(t)
		m.users.AssertNotCalled(t, "ExistingIDs", mock.Anything, mock.Anything)
	})

	t.Run("absent fields are untouched", func(t *testing.T) {
		service, m := setupTaskService(domain.AssigneeLoose)

		m.tasks.On("GetByID", mock.Anything, int64(5)).Return(bugTask(), nil).Once()
		m.boards.On("GetByID", mock.Anything, int64(10)).Return(sprintBoard(), nil).Once()
		m.tasks.On("Update", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
			return task.AssigneeID != nil && *task.AssigneeID == bob.ID && task.Title == "Renamed"
		})).Return(nil).Once()
		m.tasks.On("GetByID", mock.Anything, int64(5)).Return(bugTask(), nil).Once()

		_, err := service.UpdateTask(context.Background(), alice, 5, domain.TaskPatch{Title: stringPtr("Renamed")})

		require.NoError(t, err)
		m.tasks.AssertExpectations(t)
	})

	t.Run("board cannot move", func(t *testing.T) {
		service, m := setupTaskService(domain.AssigneeLoose)

		m.tasks.On("GetByID", mock.Anything, int64(5)).Return(bugTask(), nil).Once()
		m.boards.On("GetByID", mock.Anything, int64(10)).Return(sprintBoard(), nil).Once()

		_, err := service.UpdateTask(context.Background(), alice, 5, domain.TaskPatch{BoardID: int64Ptr(11)})

		requireFieldError(t, err, "board")
		m.tasks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("non-member is forbidden", func(t *testing.T) {
		service, m := setupTaskService(domain.AssigneeLoose)

		m.tasks.On("GetByID", mock.Anything, int64(5)).Return(bugTask(), nil).Once()
		m.boards.On("GetByID", mock.Anything, int64(10)).Return(sprintBoard(), nil).Once()

		_, err := service.UpdateTask(context.Background(), carol, 5, domain.TaskPatch{Title: stringPtr("mine")})

		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	// Carol joins the board but is neither the assignee nor the owner.
	boardWithCarol := func() *domain.Board {
		b := sprintBoard()
		b.Members = append(b.Members, *carol)
		return b
	}

	tests := []struct {
		name    string
		user    *domain.User
		allowed bool
	}{
		{"assignee", bob, true},
		{"board owner", alice, true},
		{"plain member", carol, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := setupTaskService(domain.AssigneeLoose)

			m.tasks.On("GetByID", mock.Anything, int64(5)).Return(bugTask(), nil).Once()
			m.boards.On("GetByID", mock.Anything, int64(10)).Return(boardWithCarol(), nil).Once()
			if tt.allowed {
				m.tasks.On("Delete", mock.Anything, int64(5)).Return(nil).Once()
			}

			err := service.DeleteTask(context.Background(), tt.user, 5)

			if tt.allowed {
				require.NoError(t, err)
				m.tasks.AssertExpectations(t)
				return
			}
			assert.True(t, errors.Is(err, domain.ErrForbidden))
			m.tasks.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		})
	}
}

func TestTaskService_Lists(t *testing.T) {
	service, m := setupTaskService(domain.AssigneeLoose)
	tasks := []*domain.Task{bugTask()}

	m.tasks.On("ListForMember", mock.Anything, bob.ID).Return(tasks, nil).Once()
	m.tasks.On("ListByAssignee", mock.Anything, bob.ID).Return(tasks, nil).Once()
	m.tasks.On("ListByReviewer", mock.Anything, bob.ID).Return([]*domain.Task{}, nil).Once()

	ctx := context.Background()
	all, err := service.ListTasks(ctx, bob)
	require.NoError(t, err)
	assigned, err := service.AssignedToMe(ctx, bob)
	require.NoError(t, err)
	reviewing, err := service.Reviewing(ctx, bob)
	require.NoError(t, err)

	assert.Len(t, all, 1)
	assert.Len(t, assigned, 1)
	assert.Empty(t, reviewing)
	m.tasks.AssertExpectations(t)

	_, err = service.ListTasks(ctx, nil)
	assert.True(t, errors.Is(err, domain.ErrUnauthenticated))
}
