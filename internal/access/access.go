// Package access decides, for a user, an action and a resource, whether the action is allowed.
//
// Listing is not decided here: list endpoints scope their queries to the
// boards the user belongs to and never deny.
package access

import (
	"github.com/bagdasarian/kanban-board/internal/domain"
)

type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
)

// Resource is one of BoardResource, TaskResource or CommentResource.
type Resource interface {
	resource()
}

type BoardResource struct {
	Board *domain.Board
}

// TaskResource pairs a task with its board; on create Task may be nil.
type TaskResource struct {
	Task  *domain.Task
	Board *domain.Board
}

type CommentResource struct {
	Comment *domain.Comment
	Board   *domain.Board
}

func (BoardResource) resource()   {}
func (TaskResource) resource()    {}
func (CommentResource) resource() {}

// Authorize returns nil when user may perform action on resource,
// domain.ErrUnauthenticated for a nil user and a FORBIDDEN error otherwise.
func Authorize(user *domain.User, action Action, resource Resource) error {
	if user == nil {
		return domain.ErrUnauthenticated
	}

	var allowed bool
	switch r := resource.(type) {
	case BoardResource:
		allowed = board(user.ID, action, r.Board)
	case TaskResource:
		allowed = task(user.ID, action, r)
	case CommentResource:
		allowed = comment(user.ID, action, r)
	}

	if !allowed {
		return denial(action, resource)
	}
	return nil
}

func board(userID int64, action Action, b *domain.Board) bool {
	switch action {
	case ActionCreate, ActionList:
		return true
	case ActionRetrieve, ActionUpdate:
		return b != nil && b.IsMember(userID)
	case ActionDelete:
		return b != nil && b.IsOwner(userID)
	}
	return false
}

func task(userID int64, action Action, r TaskResource) bool {
	if r.Board == nil {
		return false
	}
	switch action {
	case ActionList, ActionCreate, ActionRetrieve, ActionUpdate:
		return r.Board.IsMember(userID)
	case ActionDelete:
		if r.Task == nil {
			return false
		}
		return r.Task.IsAssignee(userID) || r.Board.IsOwner(userID)
	}
	return false
}

func comment(userID int64, action Action, r CommentResource) bool {
	switch action {
	case ActionList, ActionCreate, ActionRetrieve:
		return r.Board != nil && r.Board.IsMember(userID)
	case ActionDelete:
		return r.Comment != nil && r.Comment.AuthorID == userID
	}
	return false
}

func denial(action Action, resource Resource) error {
	switch resource.(type) {
	case BoardResource:
		if action == ActionDelete {
			return domain.NewForbiddenError("only the board owner can delete this board")
		}
		return domain.NewForbiddenError("you must be a member of this board")
	case TaskResource:
		if action == ActionDelete {
			return domain.NewForbiddenError("only the assignee or the board owner can delete this task")
		}
		if action == ActionCreate {
			return domain.NewForbiddenError("you must be a member of this board to create a task")
		}
		return domain.NewForbiddenError("you must be a member of this board")
	case CommentResource:
		if action == ActionDelete {
			return domain.NewForbiddenError("only the author can delete this comment")
		}
		return domain.NewForbiddenError("you must be a member of this board to comment")
	}
	return domain.ErrForbidden
}
