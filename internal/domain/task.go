package domain

import "time"

type Task struct {
	ID            int64
	BoardID       int64
	Title         string
	Description   *string
	Status        Status
	Priority      Priority
	DueDate       time.Time
	AssigneeID    *int64
	ReviewerID    *int64
	Assignee      *User
	Reviewer      *User
	CommentsCount int
}

type Status string

const (
	StatusToDo       Status = "to-do"
	StatusInProgress Status = "in-progress"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
)

func (s Status) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// DateLayout is the wire format of due dates.
const DateLayout = "2006-01-02"

func (t *Task) IsAssignee(userID int64) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// OptionalID distinguishes an absent field from an explicit null.
type OptionalID struct {
	Set   bool
	Value *int64
}

type TaskInput struct {
	BoardID     *int64
	Title       string
	Description *string
	Status      *Status
	Priority    *Priority
	DueDate     string
	AssigneeID  *int64
	ReviewerID  *int64
}

// TaskPatch holds the mutable task fields; nil or unset means untouched.
type TaskPatch struct {
	BoardID     *int64
	Title       *string
	Description OptionalString
	Status      *Status
	Priority    *Priority
	DueDate     *string
	AssigneeID  OptionalID
	ReviewerID  OptionalID
}

type OptionalString struct {
	Set   bool
	Value *string
}

// AssigneePolicy controls whether assignee and reviewer must belong to the board.
type AssigneePolicy string

const (
	AssigneeLoose   AssigneePolicy = "loose"
	AssigneeMembers AssigneePolicy = "members"
)

func ParseAssigneePolicy(s string) AssigneePolicy {
	if AssigneePolicy(s) == AssigneeMembers {
		return AssigneeMembers
	}
	return AssigneeLoose
}
