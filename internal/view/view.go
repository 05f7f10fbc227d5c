// Package view renders domain entities into the response shape that belongs
// to the action performed. The shape is never chosen by the client.
package view

import (
	"time"

	"github.com/bagdasarian/kanban-board/internal/domain"
)

type Action int

const (
	ActionList Action = iota
	ActionCreate
	ActionRetrieve
	ActionUpdate
)

type UserNested struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
}

func User(u *domain.User) UserNested {
	return UserNested{ID: u.ID, Email: u.Email, Fullname: u.Fullname}
}

func userOrNil(u *domain.User) *UserNested {
	if u == nil {
		return nil
	}
	n := User(u)
	return &n
}

func users(us []domain.User) []UserNested {
	out := make([]UserNested, 0, len(us))
	for i := range us {
		out = append(out, User(&us[i]))
	}
	return out
}

// BoardView is one of BoardSummary, BoardDetail, BoardPatch.
type BoardView interface {
	boardView()
}

type BoardSummary struct {
	ID                 int64  `json:"id"`
	Title              string `json:"title"`
	MemberCount        int    `json:"member_count"`
	TicketCount        int    `json:"ticket_count"`
	TasksToDoCount     int    `json:"tasks_to_do_count"`
	TasksHighPrioCount int    `json:"tasks_high_prio_count"`
	OwnerID            int64  `json:"owner_id"`
}

type BoardDetail struct {
	ID      int64        `json:"id"`
	Title   string       `json:"title"`
	OwnerID int64        `json:"owner_id"`
	Members []UserNested `json:"members"`
	Tasks   []BoardTask  `json:"tasks"`
}

type BoardPatch struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	OwnerData   *UserNested  `json:"owner_data"`
	MembersData []UserNested `json:"members_data"`
}

func (BoardSummary) boardView() {}
func (BoardDetail) boardView()  {}
func (BoardPatch) boardView()   {}

// Board picks the board shape for action: list and create render the summary,
// retrieve the detail and update the patch response.
func Board(action Action, b *domain.Board) BoardView {
	switch action {
	case ActionRetrieve:
		tasks := make([]BoardTask, 0, len(b.Tasks))
		for _, t := range b.Tasks {
			tasks = append(tasks, boardTask(t))
		}
		return BoardDetail{
			ID:      b.ID,
			Title:   b.Title,
			OwnerID: b.OwnerID,
			Members: users(b.Members),
			Tasks:   tasks,
		}
	case ActionUpdate:
		return BoardPatch{
			ID:          b.ID,
			Title:       b.Title,
			OwnerData:   userOrNil(b.Owner),
			MembersData: users(b.Members),
		}
	default:
		return BoardSummary{
			ID:                 b.ID,
			Title:              b.Title,
			MemberCount:        b.Stats.MemberCount,
			TicketCount:        b.Stats.TicketCount,
			TasksToDoCount:     b.Stats.TasksToDoCount,
			TasksHighPrioCount: b.Stats.TasksHighPrioCount,
			OwnerID:            b.OwnerID,
		}
	}
}

func Boards(action Action, boards []*domain.Board) []BoardView {
	out := make([]BoardView, 0, len(boards))
	for _, b := range boards {
		out = append(out, Board(action, b))
	}
	return out
}

// TaskView is one of TaskFull, TaskPatch.
type TaskView interface {
	taskView()
}

type TaskFull struct {
	ID            int64       `json:"id"`
	Board         int64       `json:"board"`
	Title         string      `json:"title"`
	Description   *string     `json:"description"`
	Status        string      `json:"status"`
	Priority      string      `json:"priority"`
	DueDate       string      `json:"due_date"`
	Assignee      *UserNested `json:"assignee"`
	Reviewer      *UserNested `json:"reviewer"`
	CommentsCount int         `json:"comments_count"`
}

type TaskPatch struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description *string     `json:"description"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority"`
	Assignee    *UserNested `json:"assignee"`
	Reviewer    *UserNested `json:"reviewer"`
	DueDate     string      `json:"due_date"`
}

// BoardTask is a task nested in a board detail, without the board reference.
type BoardTask struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	Description   *string     `json:"description"`
	Status        string      `json:"status"`
	Priority      string      `json:"priority"`
	Assignee      *UserNested `json:"assignee"`
	Reviewer      *UserNested `json:"reviewer"`
	DueDate       string      `json:"due_date"`
	CommentsCount int         `json:"comments_count"`
}

func (TaskFull) taskView()  {}
func (TaskPatch) taskView() {}

func Task(action Action, t *domain.Task) TaskView {
	if action == ActionUpdate {
		return TaskPatch{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Status:      string(t.Status),
			Priority:    string(t.Priority),
			Assignee:    userOrNil(t.Assignee),
			Reviewer:    userOrNil(t.Reviewer),
			DueDate:     formatDate(t.DueDate),
		}
	}
	return TaskFull{
		ID:            t.ID,
		Board:         t.BoardID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        string(t.Status),
		Priority:      string(t.Priority),
		DueDate:       formatDate(t.DueDate),
		Assignee:      userOrNil(t.Assignee),
		Reviewer:      userOrNil(t.Reviewer),
		CommentsCount: t.CommentsCount,
	}
}

func Tasks(action Action, tasks []*domain.Task) []TaskView {
	out := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, Task(action, t))
	}
	return out
}

func boardTask(t *domain.Task) BoardTask {
	return BoardTask{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        string(t.Status),
		Priority:      string(t.Priority),
		Assignee:      userOrNil(t.Assignee),
		Reviewer:      userOrNil(t.Reviewer),
		DueDate:       formatDate(t.DueDate),
		CommentsCount: t.CommentsCount,
	}
}

// CommentView is one of CommentEntry, CommentDetail.
type CommentView interface {
	commentView()
}

// CommentEntry is rendered inside a task's comment collection.
type CommentEntry struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
}

// CommentDetail is a single comment rendered on its own, so it names its task.
type CommentDetail struct {
	ID        int64     `json:"id"`
	Task      int64     `json:"task"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
}

func (CommentEntry) commentView()  {}
func (CommentDetail) commentView() {}

func Comment(action Action, c *domain.Comment) CommentView {
	if action == ActionRetrieve {
		return CommentDetail{
			ID:        c.ID,
			Task:      c.TaskID,
			CreatedAt: c.CreatedAt,
			Author:    c.AuthorName,
			Content:   c.Content,
		}
	}
	return CommentEntry{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		Author:    c.AuthorName,
		Content:   c.Content,
	}
}

func Comments(action Action, comments []*domain.Comment) []CommentView {
	out := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		out = append(out, Comment(action, c))
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}
