package user_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	appuser "github.com/asklink/matching/application/user"
	"github.com/asklink/matching/cmd/config"
	"github.com/asklink/matching/constant"
	redismocks "github.com/asklink/matching/mocks/repository/redis"
	usermocks "github.com/asklink/matching/mocks/repository/user"
	"github.com/asklink/matching/model"
	cerr "github.com/asklink/matching/utils/errors"
	"github.com/stretchr/testify/mock"
)

func uintPtr(v uint64) *uint64 { return &v }

func optVal(v uint64) model.OptionalUint64 {
	return model.OptionalUint64{Set: true, Valid: true, Value: v}
}

func optNull() model.OptionalUint64 {
	return model.OptionalUint64{Set: true}
}

func cacheTTLConfig() *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{ProfileTTL: time.Minute},
	}
}

func TestUserApp_RegisterOrUpdate(t *testing.T) {
	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}
	type args struct {
		ctx context.Context
		req *model.SignupRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.UserProfile
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: new user with referral attribution and default name",
			fields: fields{
				config:    cacheTTLConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{
					Phone:                 "555",
					ReferredBy:            optVal(3),
					ReferredOpportunityID: optVal(7),
				},
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "555"}).Return(nil, nil).Once()
				f.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(e *model.UserEntity) bool {
					return e.Name == "User" && e.Phone == "555" && e.Age == nil &&
						e.ReferredBy != nil && *e.ReferredBy == 3 &&
						e.ReferredOpportunityID != nil && *e.ReferredOpportunityID == 7
				})).Return(&model.UserEntity{
					ID:                    1,
					Name:                  "User",
					Phone:                 "555",
					ReferredBy:            uintPtr(3),
					ReferredOpportunityID: uintPtr(7),
				}, nil).Once()
			},
			want: &model.UserProfile{
				ID:                    1,
				Name:                  "User",
				Phone:                 "555",
				ReferredBy:            uintPtr(3),
				ReferredOpportunityID: uintPtr(7),
			},
		},
		{
			name: "success: repeat signup merges new referral field and keeps the old one",
			fields: fields{
				config:    cacheTTLConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{
					Phone:                 "081234567890",
					ReferredOpportunityID: optVal(9),
				},
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "081234567890"}).Return(&model.UserEntity{
					ID:         12,
					Name:       "Asti",
					Phone:      "081234567890",
					ReferredBy: uintPtr(5),
				}, nil).Once()
				f.userRepo.On("UpdateReferral", mock.Anything, mock.MatchedBy(func(u *model.UpdateReferralItem) bool {
					return u.UserID == 12 &&
						u.ReferredBy != nil && *u.ReferredBy == 5 &&
						u.ReferredOpportunityID != nil && *u.ReferredOpportunityID == 9
				})).Return(nil).Once()
				f.redisRepo.On("DeleteProfile", mock.Anything, "081234567890", "12").Return(nil).Once()
			},
			want: &model.UserProfile{
				ID:                    12,
				Name:                  "Asti",
				Phone:                 "081234567890",
				ReferredBy:            uintPtr(5),
				ReferredOpportunityID: uintPtr(9),
			},
		},
		{
			name: "success: repeat signup without referral fields changes nothing",
			fields: fields{
				config:    cacheTTLConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{Phone: "081234567890", Name: "Ignored"},
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "081234567890"}).Return(&model.UserEntity{
					ID:         12,
					Name:       "Asti",
					Phone:      "081234567890",
					ReferredBy: uintPtr(5),
				}, nil).Once()
				f.userRepo.On("UpdateReferral", mock.Anything, mock.MatchedBy(func(u *model.UpdateReferralItem) bool {
					return u.UserID == 12 &&
						u.ReferredBy != nil && *u.ReferredBy == 5 &&
						u.ReferredOpportunityID == nil
				})).Return(nil).Once()
				f.redisRepo.On("DeleteProfile", mock.Anything, "081234567890", "12").Return(nil).Once()
			},
			want: &model.UserProfile{
				ID:         12,
				Name:       "Asti",
				Phone:      "081234567890",
				ReferredBy: uintPtr(5),
			},
		},
		{
			name: "success: explicit null does not clear a stored referral",
			fields: fields{
				config:    cacheTTLConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.SignupRequest{
					Phone:      "081234567890",
					ReferredBy: optNull(),
				},
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "081234567890"}).Return(&model.UserEntity{
					ID:         12,
					Name:       "Asti",
					Phone:      "081234567890",
					ReferredBy: uintPtr(5),
				}, nil).Once()
				f.userRepo.On("UpdateReferral", mock.Anything, mock.MatchedBy(func(u *model.UpdateReferralItem) bool {
					return u.ReferredBy != nil && *u.ReferredBy == 5
				})).Return(nil).Once()
				f.redisRepo.On("DeleteProfile", mock.Anything, "081234567890", "12").Return(nil).Once()
			},
			want: &model.UserProfile{
				ID:         12,
				Name:       "Asti",
				Phone:      "081234567890",
				ReferredBy: uintPtr(5),
			},
		},
		{
			name: "error: missing phone",
			fields: fields{
				config:    cacheTTLConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args:     args{ctx: context.Background(), req: &model.SignupRequest{Name: "No Phone"}},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrMissingPhone,
		},
		{
			name: "error: insert fails",
			fields: fields{
				config:    cacheTTLConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			args: args{ctx: context.Background(), req: &model.SignupRequest{Phone: "555"}},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "555"}).Return(nil, nil).Once()
				f.userRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("insert error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.userRepo, tt.fields.redisRepo)

			got, err := app.RegisterOrUpdate(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RegisterOrUpdate() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("RegisterOrUpdate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_GetProfile(t *testing.T) {
	type fields struct {
		config    *config.Config
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.RedisRepository
	}

	profile := &model.UserProfile{ID: 42, Name: "Dana", Phone: "+15550001111"}

	tests := []struct {
		name       string
		fields     fields
		identifier string
		mockCall   func(f fields)
		want       *model.UserProfile
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: cache hit skips the database",
			fields: fields{
				config:    cacheTTLConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			identifier: "42",
			mockCall: func(f fields) {
				f.redisRepo.On("GetProfile", mock.Anything, "42").Return(profile, nil).Once()
			},
			want: profile,
		},
		{
			name: "success: cache miss falls through to the database by id",
			fields: fields{
				config:    cacheTTLConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			identifier: "42",
			mockCall: func(f fields) {
				f.redisRepo.On("GetProfile", mock.Anything, "42").Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 42}).Return(&model.UserEntity{
					ID:    42,
					Name:  "Dana",
					Phone: "+15550001111",
				}, nil).Once()
				f.redisRepo.On("SetProfile", mock.Anything, "42", profile, time.Minute).Return(nil).Once()
			},
			want: profile,
		},
		{
			name: "success: non-numeric identifier resolves by phone",
			fields: fields{
				config:    cacheTTLConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			identifier: "+15550001111",
			mockCall: func(f fields) {
				f.redisRepo.On("GetProfile", mock.Anything, "+15550001111").Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "+15550001111"}).Return(&model.UserEntity{
					ID:    42,
					Name:  "Dana",
					Phone: "+15550001111",
				}, nil).Once()
				f.redisRepo.On("SetProfile", mock.Anything, "+15550001111", profile, time.Minute).Return(nil).Once()
			},
			want: profile,
		},
		{
			name: "error: unknown user",
			fields: fields{
				config:    cacheTTLConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			identifier: "404",
			mockCall: func(f fields) {
				f.redisRepo.On("GetProfile", mock.Anything, "404").Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 404}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrUserNotFound,
		},
		{
			name: "error: database failure",
			fields: fields{
				config:    cacheTTLConfig(),
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			identifier: "42",
			mockCall: func(f fields) {
				f.redisRepo.On("GetProfile", mock.Anything, "42").Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{ID: 42}).Return(nil, errors.New("query error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.userRepo, tt.fields.redisRepo)

			got, err := app.GetProfile(context.Background(), tt.identifier)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetProfile() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetProfile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
