package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/kanban-board/internal/domain"
)

type boardRepository struct {
	db *sql.DB
}

func NewBoardRepository(db *sql.DB) *boardRepository {
	return &boardRepository{db: db}
}

const boardStatsColumns = `
	(SELECT COUNT(*) FROM board_members bm WHERE bm.board_id = b.id),
	(SELECT COUNT(*) FROM tasks t WHERE t.board_id = b.id),
	(SELECT COUNT(*) FROM tasks t WHERE t.board_id = b.id AND t.status = 'to-do'),
	(SELECT COUNT(*) FROM tasks t WHERE t.board_id = b.id AND t.priority = 'high')
`

func (r *boardRepository) Create(ctx context.Context, board *domain.Board, memberIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO boards (title, owner_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err = tx.QueryRowContext(ctx, query, board.Title, board.OwnerID).Scan(&board.ID, &board.CreatedAt)
	if err != nil {
		return translateError(err)
	}

	if err := insertMembers(ctx, tx, board.ID, memberIDs); err != nil {
		return err
	}

	return tx.Commit()
}

func insertMembers(ctx context.Context, executor DBExecutor, boardID int64, memberIDs []int64) error {
	for _, userID := range memberIDs {
		_, err := executor.ExecContext(
			ctx,
			`INSERT INTO board_members (board_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			boardID,
			userID,
		)
		if err != nil {
			return translateError(err)
		}
	}
	return nil
}

func (r *boardRepository) GetByID(ctx context.Context, id int64) (*domain.Board, error) {
	query := `
		SELECT b.id, b.title, b.owner_id, b.created_at, u.email, u.fullname
		FROM boards b
		JOIN users u ON u.id = b.owner_id
		WHERE b.id = $1
	`

	board := &domain.Board{Owner: &domain.User{}}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&board.ID,
		&board.Title,
		&board.OwnerID,
		&board.CreatedAt,
		&board.Owner.Email,
		&board.Owner.Fullname,
	)
	if err != nil {
		return nil, translateError(err)
	}
	board.Owner.ID = board.OwnerID

	members, err := r.members(ctx, id)
	if err != nil {
		return nil, err
	}
	board.Members = members

	return board, nil
}

func (r *boardRepository) members(ctx context.Context, boardID int64) ([]domain.User, error) {
	query := `
		SELECT u.id, u.email, u.fullname
		FROM board_members bm
		JOIN users u ON u.id = bm.user_id
		WHERE bm.board_id = $1
		ORDER BY u.id
	`

	rows, err := r.db.QueryContext(ctx, query, boardID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Fullname); err != nil {
			return nil, err
		}
		members = append(members, u)
	}

	return members, rows.Err()
}

func (r *boardRepository) GetStats(ctx context.Context, id int64) (domain.BoardStats, error) {
	query := `SELECT ` + boardStatsColumns + ` FROM boards b WHERE b.id = $1`

	var stats domain.BoardStats
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&stats.MemberCount,
		&stats.TicketCount,
		&stats.TasksToDoCount,
		&stats.TasksHighPrioCount,
	)
	if err != nil {
		return domain.BoardStats{}, translateError(err)
	}

	return stats, nil
}

func (r *boardRepository) ListForMember(ctx context.Context, userID int64) ([]*domain.Board, error) {
	query := `
		SELECT b.id, b.title, b.owner_id, b.created_at, ` + boardStatsColumns + `
		FROM boards b
		JOIN board_members m ON m.board_id = b.id
		WHERE m.user_id = $1
		ORDER BY b.id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	boards := make([]*domain.Board, 0)
	for rows.Next() {
		board := &domain.Board{}
		err := rows.Scan(
			&board.ID,
			&board.Title,
			&board.OwnerID,
			&board.CreatedAt,
			&board.Stats.MemberCount,
			&board.Stats.TicketCount,
			&board.Stats.TasksToDoCount,
			&board.Stats.TasksHighPrioCount,
		)
		if err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}

	return boards, rows.Err()
}

// Update writes the title and the member set in one transaction; nil fields are left alone.
func (r *boardRepository) Update(ctx context.Context, id int64, patch domain.BoardPatch) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Lock the row first so a concurrent delete surfaces as not found.
	var locked int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM boards WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		return translateError(err)
	}

	if patch.Title != nil {
		if _, err := tx.ExecContext(ctx, `UPDATE boards SET title = $2 WHERE id = $1`, id, *patch.Title); err != nil {
			return err
		}
	}

	if patch.MemberIDs != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM board_members WHERE board_id = $1`, id); err != nil {
			return err
		}
		if err := insertMembers(ctx, tx, id, *patch.MemberIDs); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *boardRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(result)
}
