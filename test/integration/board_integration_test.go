//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bagdasarian/kanban-board/internal/auth"
	"github.com/bagdasarian/kanban-board/internal/domain"
	"github.com/bagdasarian/kanban-board/internal/repository"
	"github.com/bagdasarian/kanban-board/internal/repository/postgres"
	"github.com/bagdasarian/kanban-board/internal/service"
)

type app struct {
	db       *sql.DB
	users    repository.UserRepository
	auth     service.AuthService
	boards   service.BoardService
	tasks    service.TaskService
	comments service.CommentService
}

func setupApp(t *testing.T) *app {
	database := setupTestDB(t)

	userRepo := postgres.NewUserRepository(database)
	boardRepo := postgres.NewBoardRepository(database)
	taskRepo := postgres.NewTaskRepository(database)
	commentRepo := postgres.NewCommentRepository(database)

	passwords := auth.NewPasswordManager(8, bcrypt.MinCost)
	tokens := auth.NewTokenManager("integration-secret", time.Hour)

	return &app{
		db:       database,
		users:    userRepo,
		auth:     service.NewAuthService(userRepo, passwords, tokens),
		boards:   service.NewBoardService(boardRepo, taskRepo, userRepo, domain.OwnerRemovalAllow),
		tasks:    service.NewTaskService(taskRepo, boardRepo, userRepo, domain.AssigneeLoose),
		comments: service.NewCommentService(commentRepo, taskRepo, boardRepo),
	}
}

func (a *app) register(t *testing.T, fullname, email string) *domain.User {
	t.Helper()

	session, err := a.auth.Register(context.Background(), domain.Registration{
		Fullname:         fullname,
		Email:            email,
		Password:         "secret123",
		RepeatedPassword: "secret123",
	})
	require.NoError(t, err)

	user, err := a.auth.Authenticate(context.Background(), session.Token)
	require.NoError(t, err)
	return user
}

func stringPtr(s string) *string {
	return &s
}

func (a *app) count(t *testing.T, query string, args ...any) int {
	t.Helper()

	var n int
	require.NoError(t, a.db.QueryRow(query, args...).Scan(&n))
	return n
}

func TestSprintScenario(t *testing.T) {
	a := setupApp(t)
	ctx := context.Background()

	alice := a.register(t, "Alice", "alice@example.com")
	bob := a.register(t, "Bob", "bob@example.com")
	carol := a.register(t, "Carol", "carol@example.com")

	// Duplicate member ids collapse, the owner joins automatically
	board, err := a.boards.CreateBoard(ctx, alice, "Sprint 1", []int64{bob.ID, bob.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, board.Stats.MemberCount)
	assert.Equal(t, 0, board.Stats.TicketCount)
	assert.True(t, board.IsMember(alice.ID), "owner is always a member")

	todo, high := domain.StatusToDo, domain.PriorityHigh
	task, err := a.tasks.CreateTask(ctx, bob, domain.TaskInput{
		BoardID:    &board.ID,
		Title:      "Fix bug",
		Status:     &todo,
		Priority:   &high,
		DueDate:    "2026-11-03",
		AssigneeID: &bob.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusToDo, task.Status)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	require.NotNil(t, task.Assignee)
	assert.Equal(t, "Bob", task.Assignee.Fullname)

	detail, err := a.boards.GetBoard(ctx, alice, board.ID)
	require.NoError(t, err)
	require.Len(t, detail.Tasks, 1)
	assert.Equal(t, "Fix bug", detail.Tasks[0].Title)

	for _, member := range []*domain.User{alice, bob} {
		boards, err := a.boards.ListBoards(ctx, member)
		require.NoError(t, err)
		require.Len(t, boards, 1)
		assert.Equal(t, domain.BoardStats{MemberCount: 2, TicketCount: 1, TasksToDoCount: 1, TasksHighPrioCount: 1}, boards[0].Stats)
	}

	carolBoards, err := a.boards.ListBoards(ctx, carol)
	require.NoError(t, err)
	assert.Empty(t, carolBoards)

	_, err = a.boards.GetBoard(ctx, carol, board.ID)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	_, err = a.tasks.CreateTask(ctx, carol, domain.TaskInput{BoardID: &board.ID, Title: "x", DueDate: "2026-11-03"})
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	_, err = a.boards.GetBoard(ctx, alice, board.ID+1000)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = a.comments.CreateComment(ctx, bob, task.ID, "on it")
	require.NoError(t, err)
	_, err = a.comments.CreateComment(ctx, alice, task.ID, "thanks")
	require.NoError(t, err)

	loaded, err := a.tasks.GetTask(ctx, alice, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.CommentsCount)

	comments, err := a.comments.ListComments(ctx, alice, task.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "Bob", comments[0].AuthorName)

	// Alice drops Bob; his task stays on the board
	updated, err := a.boards.UpdateBoard(ctx, alice, board.ID, domain.BoardPatch{MemberIDs: &[]int64{alice.ID}})
	require.NoError(t, err)
	require.Len(t, updated.Members, 1)
	assert.Equal(t, alice.ID, updated.Members[0].ID)

	_, err = a.boards.GetBoard(ctx, bob, board.ID)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	_, err = a.tasks.GetTask(ctx, bob, task.ID)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	bobBoards, err := a.boards.ListBoards(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, bobBoards)

	assert.Equal(t, 1, a.count(t, `SELECT COUNT(*) FROM tasks WHERE id = $1 AND board_id = $2`, task.ID, board.ID))
	kept, err := a.tasks.GetTask(ctx, alice, task.ID)
	require.NoError(t, err)
	assert.Equal(t, board.ID, kept.BoardID)
	require.NotNil(t, kept.Assignee, "removal from the board does not unassign")
	assert.Equal(t, bob.ID, kept.Assignee.ID)

	detail, err = a.boards.GetBoard(ctx, alice, board.ID)
	require.NoError(t, err)
	assert.Len(t, detail.Tasks, 1)

	// Alice brings Carol in; a plain member can rename but not delete
	_, err = a.boards.UpdateBoard(ctx, alice, board.ID, domain.BoardPatch{MemberIDs: &[]int64{alice.ID, carol.ID}})
	require.NoError(t, err)
	renamed, err := a.boards.UpdateBoard(ctx, carol, board.ID, domain.BoardPatch{Title: stringPtr("Sprint 1b")})
	require.NoError(t, err)
	assert.Equal(t, "Sprint 1b", renamed.Title)
	assert.Equal(t, alice.ID, renamed.Owner.ID)

	err = a.tasks.DeleteTask(ctx, carol, task.ID)
	assert.True(t, errors.Is(err, domain.ErrForbidden), "members who are neither assignee nor owner cannot delete")

	err = a.boards.DeleteBoard(ctx, carol, board.ID)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	require.NoError(t, a.tasks.DeleteTask(ctx, alice, task.ID))
	assert.Equal(t, 0, a.count(t, `SELECT COUNT(*) FROM comments WHERE task_id = $1`, task.ID))
}

func TestBoardUpdate_TitleAndMembersTogether(t *testing.T) {
	a := setupApp(t)
	ctx := context.Background()

	alice := a.register(t, "Alice", "alice@example.com")
	bob := a.register(t, "Bob", "bob@example.com")

	board, err := a.boards.CreateBoard(ctx, alice, "Sprint 1", []int64{bob.ID})
	require.NoError(t, err)

	_, err = a.boards.UpdateBoard(ctx, alice, board.ID, domain.BoardPatch{
		Title:     stringPtr("Sprint 2"),
		MemberIDs: &[]int64{alice.ID, bob.ID + 1000},
	})
	require.Error(t, err)

	// Nothing from the failed request is saved
	unchanged, err := a.boards.GetBoard(ctx, alice, board.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sprint 1", unchanged.Title)
	assert.Len(t, unchanged.Members, 2)

	updated, err := a.boards.UpdateBoard(ctx, alice, board.ID, domain.BoardPatch{
		Title:     stringPtr("Sprint 2"),
		MemberIDs: &[]int64{alice.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "Sprint 2", updated.Title)
	assert.Len(t, updated.Members, 1)
}

func TestTaskUpdate_ClearsAssigneeAndKeepsBoard(t *testing.T) {
	a := setupApp(t)
	ctx := context.Background()

	alice := a.register(t, "Alice", "alice@example.com")
	bob := a.register(t, "Bob", "bob@example.com")

	board, err := a.boards.CreateBoard(ctx, alice, "Sprint 1", []int64{bob.ID})
	require.NoError(t, err)
	other, err := a.boards.CreateBoard(ctx, alice, "Sprint 2", nil)
	require.NoError(t, err)

	task, err := a.tasks.CreateTask(ctx, alice, domain.TaskInput{
		BoardID:    &board.ID,
		Title:      "Fix bug",
		DueDate:    "2026-11-03",
		AssigneeID: &bob.ID,
		ReviewerID: &alice.ID,
	})
	require.NoError(t, err)

	_, err = a.tasks.UpdateTask(ctx, alice, task.ID, domain.TaskPatch{BoardID: &other.ID})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	updated, err := a.tasks.UpdateTask(ctx, alice, task.ID, domain.TaskPatch{AssigneeID: domain.OptionalID{Set: true}})
	require.NoError(t, err)
	assert.Nil(t, updated.Assignee)
	require.NotNil(t, updated.Reviewer)
	assert.Equal(t, alice.ID, updated.Reviewer.ID)
	assert.Equal(t, board.ID, updated.BoardID)

	reviewing, err := a.tasks.Reviewing(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, reviewing, 1)

	assigned, err := a.tasks.AssignedToMe(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, assigned)
}

func TestCascades(t *testing.T) {
	a := setupApp(t)
	ctx := context.Background()

	alice := a.register(t, "Alice", "alice@example.com")
	bob := a.register(t, "Bob", "bob@example.com")

	board, err := a.boards.CreateBoard(ctx, alice, "Sprint 1", []int64{bob.ID})
	require.NoError(t, err)

	task, err := a.tasks.CreateTask(ctx, alice, domain.TaskInput{
		BoardID:    &board.ID,
		Title:      "Fix bug",
		DueDate:    "2026-11-03",
		AssigneeID: &bob.ID,
		ReviewerID: &bob.ID,
	})
	require.NoError(t, err)
	_, err = a.comments.CreateComment(ctx, bob, task.ID, "on it")
	require.NoError(t, err)
	_, err = a.comments.CreateComment(ctx, alice, task.ID, "thanks")
	require.NoError(t, err)

	t.Run("deleting a user detaches tasks and drops their comments", func(t *testing.T) {
		require.NoError(t, a.users.Delete(ctx, bob.ID))

		loaded, err := a.tasks.GetTask(ctx, alice, task.ID)
		require.NoError(t, err)
		assert.Nil(t, loaded.Assignee)
		assert.Nil(t, loaded.Reviewer)
		assert.Equal(t, 1, loaded.CommentsCount)

		boards, err := a.boards.ListBoards(ctx, alice)
		require.NoError(t, err)
		require.Len(t, boards, 1)
		assert.Equal(t, 1, boards[0].Stats.MemberCount)
	})

	t.Run("deleting a board removes its tasks and comments", func(t *testing.T) {
		require.NoError(t, a.boards.DeleteBoard(ctx, alice, board.ID))

		assert.Equal(t, 0, a.count(t, `SELECT COUNT(*) FROM tasks WHERE board_id = $1`, board.ID))
		assert.Equal(t, 0, a.count(t, `SELECT COUNT(*) FROM comments WHERE task_id = $1`, task.ID))

		_, err := a.tasks.GetTask(ctx, alice, task.ID)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("deleting the owner removes owned boards", func(t *testing.T) {
		owned, err := a.boards.CreateBoard(ctx, alice, "Sprint 2", nil)
		require.NoError(t, err)

		require.NoError(t, a.users.Delete(ctx, alice.ID))

		assert.Equal(t, 0, a.count(t, `SELECT COUNT(*) FROM boards WHERE id = $1`, owned.ID))
	})
}

func TestRegistration_DuplicateEmail(t *testing.T) {
	a := setupApp(t)

	a.register(t, "Alice", "alice@example.com")

	_, err := a.auth.Register(context.Background(), domain.Registration{
		Fullname:         "Alice Again",
		Email:            "ALICE@example.com",
		Password:         "secret123",
		RepeatedPassword: "secret123",
	})

	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	assert.Contains(t, de.Fields, "email")
}
