package user

import (
	"context"
	"database/sql"

	"github.com/asklink/matching/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error)
	UpdateReferral(ctx context.Context, req *model.UpdateReferralItem) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users (name, phone, age, referred_by, referred_opportunity_id, created_at) VALUES (?, ?, ?, ?, ?, NOW())`
	getUserBase     = `SELECT id, name, phone, age, referred_by, referred_opportunity_id, created_at, updated_at FROM users WHERE true`

	updateReferralQuery = `UPDATE users SET referred_by = ?, referred_opportunity_id = ?, updated_at = NOW() WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.Name, data.Phone, data.Age, data.ReferredBy, data.ReferredOpportunityID)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// UpdateReferral persists the merged referral attribution and refreshes
// updated_at. It is a single statement, so there is no partial state to
// clean up on failure.
func (s *SQL) UpdateReferral(ctx context.Context, req *model.UpdateReferralItem) error {
	_, err := s.conn.ExecContext(ctx, updateReferralQuery, req.ReferredBy, req.ReferredOpportunityID, req.UserID)
	return err
}
