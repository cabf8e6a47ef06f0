package user

import (
	"context"
	"strconv"

	"github.com/asklink/matching/cmd/config"
	"github.com/asklink/matching/constant"
	"github.com/asklink/matching/model"
	redisrepo "github.com/asklink/matching/repository/redis"
	userrepo "github.com/asklink/matching/repository/user"
	"github.com/asklink/matching/utils/errors"
	"github.com/asklink/matching/utils/logger"
	"go.uber.org/zap"
)

type UserApp interface {
	RegisterOrUpdate(ctx context.Context, req *model.SignupRequest) (*model.UserProfile, error)
	GetProfile(ctx context.Context, identifier string) (*model.UserProfile, error)
}

type UserAppImpl struct {
	config    *config.Config
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		userRepo:  userRepo,
		redisRepo: redisRepo,
	}
}

// RegisterOrUpdate upserts a user by phone. A first signup inserts the
// row; a repeat signup only merges referral attribution and refreshes
// updated_at, leaving name and age untouched.
func (s *UserAppImpl) RegisterOrUpdate(ctx context.Context, req *model.SignupRequest) (*model.UserProfile, error) {
	if req.Phone == "" {
		return nil, errors.SetCustomError(constant.ErrMissingPhone)
	}

	existing, err := s.userRepo.Get(ctx, &model.UserFilter{Phone: req.Phone})
	if err != nil {
		logger.Error("[RegisterOrUpdate] err userRepo.Get phone", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err.Error())
	}

	if existing != nil {
		// Merge rule: a supplied non-null id wins, null or omitted keeps
		// the stored value. A referral is never cleared on re-signup.
		merged := &model.UpdateReferralItem{
			UserID:                existing.ID,
			ReferredBy:            req.ReferredBy.Pick(existing.ReferredBy),
			ReferredOpportunityID: req.ReferredOpportunityID.Pick(existing.ReferredOpportunityID),
		}

		if err := s.userRepo.UpdateReferral(ctx, merged); err != nil {
			logger.Error("[RegisterOrUpdate] err userRepo.UpdateReferral", zap.String("error", err.Error()))
			return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err.Error())
		}

		if err := s.redisRepo.DeleteProfile(ctx, req.Phone, strconv.FormatUint(existing.ID, 10)); err != nil {
			logger.Warn("[RegisterOrUpdate] err redisRepo.DeleteProfile", zap.String("error", err.Error()))
		}

		existing.ReferredBy = merged.ReferredBy
		existing.ReferredOpportunityID = merged.ReferredOpportunityID
		return existing.Profile(), nil
	}

	name := req.Name
	if name == "" {
		name = constant.DefaultUserName
	}

	var age *int64
	if req.Age.Set && req.Age.Valid {
		a := int64(req.Age.Value)
		age = &a
	}

	entity := &model.UserEntity{
		Name:                  name,
		Phone:                 req.Phone,
		Age:                   age,
		ReferredBy:            req.ReferredBy.Ptr(),
		ReferredOpportunityID: req.ReferredOpportunityID.Ptr(),
	}

	entity, err = s.userRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[RegisterOrUpdate] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err.Error())
	}

	return entity.Profile(), nil
}

// GetProfile resolves an identifier (numeric id or phone) to a user
// projection. Cache reads and writes are best-effort; a cache failure is
// logged and the database answers.
func (s *UserAppImpl) GetProfile(ctx context.Context, identifier string) (*model.UserProfile, error) {
	cached, err := s.redisRepo.GetProfile(ctx, identifier)
	if err != nil {
		logger.Warn("[GetProfile] err redisRepo.GetProfile", zap.String("error", err.Error()))
	}
	if cached != nil {
		return cached, nil
	}

	user, err := s.userRepo.Get(ctx, model.FilterFromIdentifier(identifier))
	if err != nil {
		logger.Error("[GetProfile] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorDetail(constant.ErrInternal, err.Error())
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	profile := user.Profile()
	if err := s.redisRepo.SetProfile(ctx, identifier, profile, s.config.Cache.ProfileTTL); err != nil {
		logger.Warn("[GetProfile] err redisRepo.SetProfile", zap.String("error", err.Error()))
	}

	return profile, nil
}
