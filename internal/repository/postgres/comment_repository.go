package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/kanban-board/internal/domain"
)

type commentRepository struct {
	executor DBExecutor
}

func NewCommentRepository(db *sql.DB) *commentRepository {
	return &commentRepository{executor: db}
}

// Create inserts the comment; created_at is always assigned by the database.
func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (task_id, author_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		comment.TaskID,
		comment.AuthorID,
		comment.Content,
	).Scan(&comment.ID, &comment.CreatedAt)

	return translateError(err)
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	query := `
		SELECT c.id, c.task_id, c.author_id, u.fullname, c.content, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1
	`

	comment := &domain.Comment{}
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&comment.ID,
		&comment.TaskID,
		&comment.AuthorID,
		&comment.AuthorName,
		&comment.Content,
		&comment.CreatedAt,
	)
	if err != nil {
		return nil, translateError(err)
	}

	return comment, nil
}

func (r *commentRepository) ListByTask(ctx context.Context, taskID int64) ([]*domain.Comment, error) {
	query := `
		SELECT c.id, c.task_id, c.author_id, u.fullname, c.content, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.task_id = $1
		ORDER BY c.created_at, c.id
	`

	rows, err := r.executor.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		comment := &domain.Comment{}
		err := rows.Scan(
			&comment.ID,
			&comment.TaskID,
			&comment.AuthorID,
			&comment.AuthorName,
			&comment.Content,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	return comments, rows.Err()
}

func (r *commentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(result)
}
