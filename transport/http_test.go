package transport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/asklink/matching/cmd/config"
	"github.com/asklink/matching/constant"
	"github.com/asklink/matching/model"
	"github.com/asklink/matching/transport"
	cerr "github.com/asklink/matching/utils/errors"
)

type stubUserApp struct {
	profile *model.UserProfile
	err     error
}

func (s *stubUserApp) RegisterOrUpdate(ctx context.Context, req *model.SignupRequest) (*model.UserProfile, error) {
	return s.profile, s.err
}

func (s *stubUserApp) GetProfile(ctx context.Context, identifier string) (*model.UserProfile, error) {
	return s.profile, s.err
}

type stubMatchApp struct {
	status constant.MatchStatus
	items  []model.ArchiveItem
	err    error
}

func (s *stubMatchApp) Respond(ctx context.Context, matchID uint64, req *model.RespondRequest) (constant.MatchStatus, error) {
	return s.status, s.err
}

func (s *stubMatchApp) GetArchive(ctx context.Context, identifier string) ([]model.ArchiveItem, error) {
	return s.items, s.err
}

func (s *stubMatchApp) Expire(ctx context.Context, matchID uint64) (constant.MatchStatus, error) {
	return s.status, s.err
}

func (s *stubMatchApp) ScheduleExpiration(ctx context.Context, matchID uint64, expiresAt time.Time) error {
	return s.err
}

func testConfig() *config.Config {
	return &config.Config{
		Internal: config.InternalConfig{APIKey: "test-key"},
	}
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRespondMatch_SuccessEnvelope(t *testing.T) {
	handler := transport.NewTransport(testConfig(),
		&stubUserApp{},
		&stubMatchApp{status: constant.MatchStatusReferred},
	)

	rec := doRequest(t, handler, http.MethodPost, "/api/matches/100/respond", `{"response":"referred","user_id":42}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body model.RespondResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success || body.Message != "Match referred" || body.Status != "referred" {
		t.Fatalf("body = %+v", body)
	}
}

func TestRespondMatch_NotFoundEnvelope(t *testing.T) {
	handler := transport.NewTransport(testConfig(),
		&stubUserApp{},
		&stubMatchApp{err: cerr.SetCustomError(constant.ErrMatchNotFound)},
	)

	rec := doRequest(t, handler, http.MethodPost, "/api/matches/100/respond", `{"response":"yes","user_id":42}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var body model.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Success || body.Error != "match not found" {
		t.Fatalf("body = %+v", body)
	}
}

func TestSignup_MissingPhone(t *testing.T) {
	handler := transport.NewTransport(testConfig(), &stubUserApp{}, &stubMatchApp{})

	rec := doRequest(t, handler, http.MethodPost, "/api/signup", `{"name":"No Phone"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body model.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Success || body.Error != "missing required field: phone" {
		t.Fatalf("body = %+v", body)
	}
}

func TestGetArchive_EmptyIsSuccess(t *testing.T) {
	handler := transport.NewTransport(testConfig(),
		&stubUserApp{},
		&stubMatchApp{items: []model.ArchiveItem{}},
	)

	rec := doRequest(t, handler, http.MethodGet, "/api/opportunities/nobody/archive", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body model.ArchiveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success || body.Count != 0 || body.Opportunities == nil || len(body.Opportunities) != 0 {
		t.Fatalf("body = %+v", body)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	handler := transport.NewTransport(testConfig(),
		&stubUserApp{err: cerr.SetCustomError(constant.ErrUserNotFound)},
		&stubMatchApp{},
	)

	rec := doRequest(t, handler, http.MethodGet, "/api/users/404/profile", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestInternalEndpoints_RequireKey(t *testing.T) {
	handler := transport.NewTransport(testConfig(), &stubUserApp{}, &stubMatchApp{status: constant.MatchStatusExpired})

	rec := doRequest(t, handler, http.MethodPost, "/internal/v1/matches/100/expire", "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status without key = %d, want 403", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/internal/v1/matches/100/expire", strings.NewReader("{}"))
	req.Header.Set("Authorization", "Bearer test-key")
	authed := httptest.NewRecorder()
	handler.ServeHTTP(authed, req)
	if authed.Code != http.StatusOK {
		t.Fatalf("status with key = %d, want 200", authed.Code)
	}

	var body model.ExpireResponse
	if err := json.Unmarshal(authed.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !body.Success || body.Status != "expired" {
		t.Fatalf("body = %+v", body)
	}
}
