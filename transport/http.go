package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	matchapp "github.com/asklink/matching/application/match"
	userapp "github.com/asklink/matching/application/user"
	"github.com/asklink/matching/cmd/config"
	"github.com/asklink/matching/constant"
	"github.com/asklink/matching/model"
	"github.com/asklink/matching/utils/errors"
	validatorx "github.com/asklink/matching/utils/validator"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp  userapp.UserApp
	MatchApp matchapp.MatchApp
}

func NewTransport(cfg *config.Config, UserApp userapp.UserApp, MatchApp matchapp.MatchApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:  UserApp,
		MatchApp: MatchApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public API
	mux.HandleFunc("/api/signup", rh.Signup).Methods(http.MethodPost)
	mux.HandleFunc("/api/matches/{id}/respond", rh.RespondMatch).Methods(http.MethodPost)
	mux.HandleFunc("/api/opportunities/{identifier}/archive", rh.GetArchive).Methods(http.MethodGet)
	mux.HandleFunc("/api/users/{identifier}/profile", rh.GetProfile).Methods(http.MethodGet)

	// Internal endpoints for the expiration pipeline
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))
	internal.HandleFunc("/matches/{id}/expire", rh.ExpireMatch).Methods(http.MethodPost)
	internal.HandleFunc("/matches/{id}/schedule-expiration", rh.ScheduleExpiration).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())

	return mux
}

// Signup handler
// @Summary Register or update a user
// @Description Upsert a user by phone, optionally attaching referral attribution
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.SignupRequest true "Signup Request"
// @Success 200 {object} model.SignupResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /api/signup [post]
func (s *RestHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		// phone is the only required field
		writeError(w, errors.SetCustomError(constant.ErrMissingPhone))
		return
	}

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	profile, err := s.UserApp.RegisterOrUpdate(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.SignupResponse{Success: true, User: profile})
}

// RespondMatch handler
// @Summary Respond to a match
// @Description Record accept/decline/referred for a match owned by the responding user
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param request body model.RespondRequest true "Respond Request"
// @Success 200 {object} model.RespondResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/matches/{id}/respond [post]
func (s *RestHandler) RespondMatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	matchID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.MatchApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	status, err := s.MatchApp.Respond(ctx, matchID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.RespondResponse{
		Success: true,
		Message: fmt.Sprintf("Match %s", status),
		Status:  string(status),
	})
}

// GetArchive handler
// @Summary Get a user's archived opportunities
// @Description List declined and referred matches for a user identified by id or phone
// @Tags Matches
// @Produce json
// @Param identifier path string true "User ID or phone"
// @Success 200 {object} model.ArchiveResponse
// @Router /api/opportunities/{identifier}/archive [get]
func (s *RestHandler) GetArchive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identifier := mux.Vars(r)["identifier"]

	if s.MatchApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	items, err := s.MatchApp.GetArchive(ctx, identifier)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.ArchiveResponse{
		Success:       true,
		Opportunities: items,
		Count:         len(items),
	})
}

// GetProfile handler
// @Summary Get a user profile
// @Description Return a user record including referral attribution
// @Tags Users
// @Produce json
// @Param identifier path string true "User ID or phone"
// @Success 200 {object} model.ProfileResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/users/{identifier}/profile [get]
func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identifier := mux.Vars(r)["identifier"]

	if s.UserApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	profile, err := s.UserApp.GetProfile(ctx, identifier)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.ProfileResponse{Success: true, User: profile})
}

// ExpireMatch handler, called by the expiration consumer. Expiring a match
// that was already responded to is a no-op success.
func (s *RestHandler) ExpireMatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	matchID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.MatchApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	status, err := s.MatchApp.Expire(ctx, matchID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.ExpireResponse{Success: true, Status: string(status)})
}

// ScheduleExpiration handler, called by the match generator after creating
// a pending match.
func (s *RestHandler) ScheduleExpiration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	matchID, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.ScheduleExpirationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.MatchApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	if err := s.MatchApp.ScheduleExpiration(ctx, matchID, req.ExpiresAt); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.ScheduleExpirationResponse{Success: true})
}

func pathID(r *http.Request, name string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[name], 10, 64)
}
