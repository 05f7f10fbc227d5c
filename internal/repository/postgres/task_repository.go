package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/kanban-board/internal/domain"
)

type taskRepository struct {
	executor DBExecutor
}

func NewTaskRepository(db *sql.DB) *taskRepository {
	return &taskRepository{executor: db}
}

const taskSelect = `
	SELECT t.id, t.board_id, t.title, t.description, t.status, t.priority, t.due_date,
	       a.id, a.email, a.fullname,
	       rv.id, rv.email, rv.fullname,
	       (SELECT COUNT(*) FROM comments c WHERE c.task_id = t.id)
	FROM tasks t
	LEFT JOIN users a ON a.id = t.assignee_id
	LEFT JOIN users rv ON rv.id = t.reviewer_id
`

func scanTask(row rowScanner) (*domain.Task, error) {
	task := &domain.Task{}
	var (
		description                 sql.NullString
		status, priority            string
		assigneeID, reviewerID      sql.NullInt64
		assigneeEmail, assigneeName sql.NullString
		reviewerEmail, reviewerName sql.NullString
	)

	err := row.Scan(
		&task.ID,
		&task.BoardID,
		&task.Title,
		&description,
		&status,
		&priority,
		&task.DueDate,
		&assigneeID,
		&assigneeEmail,
		&assigneeName,
		&reviewerID,
		&reviewerEmail,
		&reviewerName,
		&task.CommentsCount,
	)
	if err != nil {
		return nil, err
	}

	task.Description = nullableString(description)
	task.Status = domain.Status(status)
	task.Priority = domain.Priority(priority)
	task.AssigneeID = nullableInt(assigneeID)
	task.ReviewerID = nullableInt(reviewerID)
	if assigneeID.Valid {
		task.Assignee = &domain.User{ID: assigneeID.Int64, Email: assigneeEmail.String, Fullname: assigneeName.String}
	}
	if reviewerID.Valid {
		task.Reviewer = &domain.User{ID: reviewerID.Int64, Email: reviewerEmail.String, Fullname: reviewerName.String}
	}

	return task, nil
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (board_id, title, description, status, priority, due_date, assignee_id, reviewer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		task.BoardID,
		task.Title,
		task.Description,
		string(task.Status),
		string(task.Priority),
		task.DueDate,
		task.AssigneeID,
		task.ReviewerID,
	).Scan(&task.ID)

	return translateError(err)
}

func (r *taskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := scanTask(r.executor.QueryRowContext(ctx, taskSelect+` WHERE t.id = $1`, id))
	if err != nil {
		return nil, translateError(err)
	}
	return task, nil
}

// Update writes every mutable column; board_id is never touched.
func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, description = $3, status = $4, priority = $5,
		    due_date = $6, assignee_id = $7, reviewer_id = $8
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(
		ctx,
		query,
		task.ID,
		task.Title,
		task.Description,
		string(task.Status),
		string(task.Priority),
		task.DueDate,
		task.AssigneeID,
		task.ReviewerID,
	)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(result)
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(result)
}

func (r *taskRepository) ListByBoard(ctx context.Context, boardID int64) ([]*domain.Task, error) {
	return r.list(ctx, taskSelect+` WHERE t.board_id = $1 ORDER BY t.id`, boardID)
}

func (r *taskRepository) ListForMember(ctx context.Context, userID int64) ([]*domain.Task, error) {
	query := taskSelect + `
		JOIN board_members m ON m.board_id = t.board_id
		WHERE m.user_id = $1
		ORDER BY t.id
	`
	return r.list(ctx, query, userID)
}

func (r *taskRepository) ListByAssignee(ctx context.Context, userID int64) ([]*domain.Task, error) {
	return r.list(ctx, taskSelect+` WHERE t.assignee_id = $1 ORDER BY t.id`, userID)
}

func (r *taskRepository) ListByReviewer(ctx context.Context, userID int64) ([]*domain.Task, error) {
	return r.list(ctx, taskSelect+` WHERE t.reviewer_id = $1 ORDER BY t.id`, userID)
}

func (r *taskRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Task, error) {
	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}
