package match

import (
	"context"
	"database/sql"

	"github.com/asklink/matching/constant"
	"github.com/asklink/matching/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type MatchRepository interface {
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, matchID, userID uint64) (*model.MatchEntity, error)
	GetByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, matchID uint64) (*model.MatchEntity, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, matchID uint64, status constant.MatchStatus) error
	ListArchive(ctx context.Context, userID uint64) ([]model.ArchiveRow, error)
}

func NewMatchRepository(conn *sqlx.DB) MatchRepository {
	return &SQL{conn: conn}
}

const (
	getMatchBase = `SELECT id, ask_id, requester_id, matched_user_id, status, created_at, updated_at FROM matches WHERE id = ?`

	updateMatchStatusQuery = `UPDATE matches SET status = ?, updated_at = NOW() WHERE id = ?`

	listArchiveQuery = `SELECT m.id AS match_id, m.ask_id, m.status, m.updated_at,
a.title, a.ask_text, a.category,
u.id AS requester_id, u.name AS requester_name
FROM matches m
JOIN asks a ON m.ask_id = a.id
JOIN users u ON a.user_id = u.id
WHERE m.matched_user_id = ? AND m.status IN (?, ?)
ORDER BY m.updated_at DESC`
)

// GetForUpdateTx locks the match row owned by userID. It returns nil when
// the match does not exist or belongs to someone else; callers must not
// distinguish the two cases.
func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, matchID, userID uint64) (*model.MatchEntity, error) {
	var entity model.MatchEntity
	row := tx.QueryRowxContext(ctx, getMatchBase+" AND matched_user_id = ? FOR UPDATE", matchID, userID)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) GetByIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, matchID uint64) (*model.MatchEntity, error) {
	var entity model.MatchEntity
	row := tx.QueryRowxContext(ctx, getMatchBase+" FOR UPDATE", matchID)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, matchID uint64, status constant.MatchStatus) error {
	_, err := tx.ExecContext(ctx, updateMatchStatusQuery, status, matchID)
	return err
}

// ListArchive returns the user's declined and referred matches joined with
// the ask and its owner, most recently acted-on first.
func (r *SQL) ListArchive(ctx context.Context, userID uint64) ([]model.ArchiveRow, error) {
	rows, err := r.conn.QueryxContext(ctx, listArchiveQuery, userID, constant.MatchStatusDeclined, constant.MatchStatusReferred)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ArchiveRow, 0)
	for rows.Next() {
		var it model.ArchiveRow
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
