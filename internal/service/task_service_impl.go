package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bagdasarian/kanban-board/internal/access"
	"github.com/bagdasarian/kanban-board/internal/domain"
	"github.com/bagdasarian/kanban-board/internal/repository"
)

type taskService struct {
	taskRepo  repository.TaskRepository
	boardRepo repository.BoardRepository
	userRepo  repository.UserRepository
	assignees domain.AssigneePolicy
}

func NewTaskService(
	taskRepo repository.TaskRepository,
	boardRepo repository.BoardRepository,
	userRepo repository.UserRepository,
	assignees domain.AssigneePolicy,
) TaskService {
	return &taskService{
		taskRepo:  taskRepo,
		boardRepo: boardRepo,
		userRepo:  userRepo,
		assignees: assignees,
	}
}

func (s *taskService) ListTasks(ctx context.Context, user *domain.User) ([]*domain.Task, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.taskRepo.ListForMember(ctx, user.ID)
}

func (s *taskService) AssignedToMe(ctx context.Context, user *domain.User) ([]*domain.Task, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.taskRepo.ListByAssignee(ctx, user.ID)
}

func (s *taskService) Reviewing(ctx context.Context, user *domain.User) ([]*domain.Task, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.taskRepo.ListByReviewer(ctx, user.ID)
}

// CreateTask requires the creator to be a member of the target board
func (s *taskService) CreateTask(ctx context.Context, user *domain.User, input domain.TaskInput) (*domain.Task, error) {
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	if input.BoardID == nil {
		return nil, domain.NewValidationError("board", fieldRequired)
	}

	board, err := s.boardRepo.GetByID(ctx, *input.BoardID)
	if err != nil {
		return nil, notFound(err, "board")
	}
	if err := access.Authorize(user, access.ActionCreate, access.TaskResource{Board: board}); err != nil {
		return nil, err
	}

	v := domain.ValidationErrors{}

	task := &domain.Task{
		BoardID:     board.ID,
		Title:       validateTitle(v, input.Title),
		Description: input.Description,
		Status:      domain.StatusToDo,
		Priority:    domain.PriorityMedium,
		AssigneeID:  input.AssigneeID,
		ReviewerID:  input.ReviewerID,
	}
	// Absent fields take the defaults; an empty string is an invalid choice.
	if input.Status != nil {
		task.Status = *input.Status
		validateStatus(v, task.Status)
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
		validatePriority(v, task.Priority)
	}
	if input.DueDate == "" {
		v.Add("due_date", fieldRequired)
	} else {
		task.DueDate = parseDueDate(v, input.DueDate)
	}
	if err := s.checkAssignment(ctx, v, board, task.AssigneeID, task.ReviewerID); err != nil {
		return nil, err
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return s.taskRepo.GetByID(ctx, task.ID)
}

func (s *taskService) GetTask(ctx context.Context, user *domain.User, id int64) (*domain.Task, error) {
	task, board, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(user, access.ActionRetrieve, access.TaskResource{Task: task, Board: board}); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask applies the patch; the board of a task never changes
func (s *taskService) UpdateTask(ctx context.Context, user *domain.User, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	task, board, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.Authorize(user, access.ActionUpdate, access.TaskResource{Task: task, Board: board}); err != nil {
		return nil, err
	}

	v := domain.ValidationErrors{}

	if patch.BoardID != nil && *patch.BoardID != task.BoardID {
		v.Add("board", "The board of a task cannot be changed.")
	}
	if patch.Title != nil {
		task.Title = validateTitle(v, *patch.Title)
	}
	if patch.Description.Set {
		task.Description = patch.Description.Value
	}
	if patch.Status != nil {
		task.Status = *patch.Status
		validateStatus(v, task.Status)
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
		validatePriority(v, task.Priority)
	}
	if patch.DueDate != nil {
		task.DueDate = parseDueDate(v, *patch.DueDate)
	}

	var assignee, reviewer *int64
	if patch.AssigneeID.Set {
		task.AssigneeID = patch.AssigneeID.Value
		assignee = task.AssigneeID
	}
	if patch.ReviewerID.Set {
		task.ReviewerID = patch.ReviewerID.Value
		reviewer = task.ReviewerID
	}
	if err := s.checkAssignment(ctx, v, board, assignee, reviewer); err != nil {
		return nil, err
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, notFound(err, "task")
	}

	updated, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "task")
	}
	return updated, nil
}

// DeleteTask is allowed to the assignee and to the board owner
func (s *taskService) DeleteTask(ctx context.Context, user *domain.User, id int64) error {
	task, board, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := access.Authorize(user, access.ActionDelete, access.TaskResource{Task: task, Board: board}); err != nil {
		return err
	}

	return notFound(s.taskRepo.Delete(ctx, id), "task")
}

func (s *taskService) load(ctx context.Context, id int64) (*domain.Task, *domain.Board, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, notFound(err, "task")
	}

	board, err := s.boardRepo.GetByID(ctx, task.BoardID)
	if err != nil {
		return nil, nil, notFound(err, "board")
	}

	return task, board, nil
}

// checkAssignment validates newly set assignee and reviewer ids; nil means not being set.
func (s *taskService) checkAssignment(ctx context.Context, v domain.ValidationErrors, board *domain.Board, assignee, reviewer *int64) error {
	fields := []struct {
		name string
		id   *int64
	}{
		{"assignee_id", assignee},
		{"reviewer_id", reviewer},
	}

	for _, f := range fields {
		field, id := f.name, f.id
		if id == nil {
			continue
		}
		if err := checkUsersExist(ctx, s.userRepo, v, field, []int64{*id}); err != nil {
			return err
		}
		if _, missing := v[field]; missing {
			continue
		}
		if s.assignees == domain.AssigneeMembers && !board.IsMember(*id) {
			v.Add(field, fmt.Sprintf("User %d is not a member of this board.", *id))
		}
	}
	return nil
}

func validateStatus(v domain.ValidationErrors, status domain.Status) {
	if !status.Valid() {
		v.Add("status", fmt.Sprintf("%q is not a valid choice.", status))
	}
}

func validatePriority(v domain.ValidationErrors, priority domain.Priority) {
	if !priority.Valid() {
		v.Add("priority", fmt.Sprintf("%q is not a valid choice.", priority))
	}
}

func parseDueDate(v domain.ValidationErrors, value string) time.Time {
	date, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		v.Add("due_date", "Date has wrong format. Use YYYY-MM-DD.")
	}
	return date
}
