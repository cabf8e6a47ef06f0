package match

import (
	"context"
	"time"

	"github.com/asklink/matching/constant"
	"github.com/asklink/matching/model"
	matchrepo "github.com/asklink/matching/repository/match"
	txrepo "github.com/asklink/matching/repository/tx"
	userrepo "github.com/asklink/matching/repository/user"
	"github.com/asklink/matching/thirdparty/rabbitmq"
	"github.com/asklink/matching/utils/errors"
	"github.com/asklink/matching/utils/logger"
	"go.uber.org/zap"
)

type MatchApp interface {
	Respond(ctx context.Context, matchID uint64, req *model.RespondRequest) (constant.MatchStatus, error)
	GetArchive(ctx context.Context, identifier string) ([]model.ArchiveItem, error)
	Expire(ctx context.Context, matchID uint64) (constant.MatchStatus, error)
	ScheduleExpiration(ctx context.Context, matchID uint64, expiresAt time.Time) error
}

type matchAppImpl struct {
	txRepo    txrepo.TxRepository
	matchRepo matchrepo.MatchRepository
	userRepo  userrepo.UserRepository
	publisher *rabbitmq.Publisher
}

func NewMatchApp(txRepo txrepo.TxRepository, matchRepo matchrepo.MatchRepository, userRepo userrepo.UserRepository, publisher *rabbitmq.Publisher) MatchApp {
	return &matchAppImpl{txRepo: txRepo, matchRepo: matchRepo, userRepo: userRepo, publisher: publisher}
}

// Respond records a user's answer to a match. The ownership check and the
// status update share one transaction; the row lock serializes concurrent
// responses to the same match. There is deliberately no guard on the prior
// status: responses are re-entrant and the last write wins.
func (s *matchAppImpl) Respond(ctx context.Context, matchID uint64, req *model.RespondRequest) (constant.MatchStatus, error) {
	status, ok := constant.ResponseStatusMap[req.Response]
	if !ok {
		return "", errors.SetCustomError(constant.ErrInvalidResponse)
	}
	if !req.UserID.Valid {
		return "", errors.SetCustomError(constant.ErrMissingUserID)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Respond] begin tx", zap.String("error", err.Error()))
		return "", errors.SetCustomErrorDetail(constant.ErrInternal, err.Error())
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// A miss here covers both "no such match" and "not your match";
	// callers get the same not-found either way.
	m, err := s.matchRepo.GetForUpdateTx(ctx, tx, matchID, req.UserID.Value)
	if err != nil {
		logger.Error("[Respond] get match", zap.String("error", err.Error()))
		return "", errors.SetCustomErrorDetail(constant.ErrInternal, err.Error())
	}
	if m == nil {
		return "", errors.SetCustomError(constant.ErrMatchNotFound)
	}

	if err := s.matchRepo.UpdateStatusTx(ctx, tx, matchID, status); err != nil {
		logger.Error("[Respond] update status", zap.String("error", err.Error()))
		return "", errors.SetCustomErrorDetail(constant.ErrInternal, err.Error())
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Respond] commit tx", zap.String("error", err.Error()))
		return "", errors.SetCustomErrorDetail(constant.ErrInternal, err.Error())
	}
	committed = true

	// Publish the responded event after commit; failures are logged, never
	// surfaced to the caller.
	if s.publisher != nil {
		msg := rabbitmq.MatchRespondedMessage{
			MatchID:       m.ID,
			AskID:         m.AskID,
			RequesterID:   m.RequesterID,
			MatchedUserID: m.MatchedUserID,
			Status:        string(status),
			RespondedAt:   time.Now(),
		}
		if err := s.publisher.PublishMatchResponded(msg); err != nil {
			logger.Error("[Respond] publish match responded", zap.String("error", err.Error()))
		}
	}

	return status, nil
}

// GetArchive lists a user's declined and referred matches with ask and
// requester metadata. An identifier that resolves to no user is an empty
// archive, never an error.
func (s *matchAppImpl) GetArchive(ctx context.Context, identifier string) ([]model.ArchiveItem, error) {
	user, err := s.userRepo.Get(ctx, model.FilterFromIdentifier(identifier))
	if err != nil {
		logger.Error("[GetArchive] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err.Error())
	}
	if user == nil {
		return []model.ArchiveItem{}, nil
	}

	rows, err := s.matchRepo.ListArchive(ctx, user.ID)
	if err != nil {
		logger.Error("[GetArchive] err matchRepo.ListArchive", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err.Error())
	}

	items := make([]model.ArchiveItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, archiveItem(row))
	}
	return items, nil
}

// Expire flips a match to expired if it is still pending. A match that was
// already responded to is left alone and its current status is returned, so
// a late expiration message is harmless.
func (s *matchAppImpl) Expire(ctx context.Context, matchID uint64) (constant.MatchStatus, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Expire] begin tx", zap.String("error", err.Error()))
		return "", errors.SetCustomErrorDetail(constant.ErrInternal, err.Error())
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	m, err := s.matchRepo.GetByIDForUpdateTx(ctx, tx, matchID)
	if err != nil {
		logger.Error("[Expire] get match", zap.String("error", err.Error()))
		return "", errors.SetCustomErrorDetail(constant.ErrInternal, err.Error())
	}
	if m == nil {
		return "", errors.SetCustomError(constant.ErrMatchNotFound)
	}

	if m.Status != constant.MatchStatusPending {
		return m.Status, nil
	}

	if err := s.matchRepo.UpdateStatusTx(ctx, tx, matchID, constant.MatchStatusExpired); err != nil {
		logger.Error("[Expire] update status", zap.String("error", err.Error()))
		return "", errors.SetCustomErrorDetail(constant.ErrInternal, err.Error())
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Expire] commit tx", zap.String("error", err.Error()))
		return "", errors.SetCustomErrorDetail(constant.ErrInternal, err.Error())
	}
	committed = true

	return constant.MatchStatusExpired, nil
}

// ScheduleExpiration publishes a delayed expiration message for a match.
// Called by the match generator right after it creates a pending match.
func (s *matchAppImpl) ScheduleExpiration(ctx context.Context, matchID uint64, expiresAt time.Time) error {
	if s.publisher == nil {
		return errors.SetCustomErrorDetail(constant.ErrInternal, "expiration publisher unavailable")
	}

	msg := rabbitmq.MatchExpirationMessage{
		MatchID:   matchID,
		ExpiresAt: expiresAt,
	}
	if err := s.publisher.PublishMatchExpiration(msg); err != nil {
		logger.Error("[ScheduleExpiration] publish", zap.String("error", err.Error()))
		return errors.SetCustomErrorDetail(constant.ErrInternal, err.Error())
	}
	return nil
}

// archiveItem maps a join row onto the wire item, filling the historical
// alias fields and placeholders.
func archiveItem(row model.ArchiveRow) model.ArchiveItem {
	title := constant.FallbackAskTitle
	if row.Title.Valid && row.Title.String != "" {
		title = row.Title.String
	}

	name := constant.FallbackRequesterName
	if row.RequesterName.Valid && row.RequesterName.String != "" {
		name = row.RequesterName.String
	}

	return model.ArchiveItem{
		MatchID:       row.MatchID,
		AskID:         row.AskID,
		AskTitle:      title,
		Title:         title,
		AskText:       row.AskText.String,
		Category:      row.Category.String,
		Status:        row.Status,
		RequesterID:   row.RequesterID,
		RequesterName: name,
		OtherName:     name,
		RespondedAt:   row.UpdatedAt,
	}
}
