package handler_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"talentradar/internal/recruiter/handler"
	"talentradar/internal/recruiter/models"
	"talentradar/internal/recruiter/service"
	"talentradar/internal/recruiter/store"
	"talentradar/pkg/testutil"
)

type ProfileHandlerSuite struct {
	suite.Suite
	router chi.Router
}

func TestProfileHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerSuite))
}

func (s *ProfileHandlerSuite) SetupTest() {
	svc := service.New(store.NewInMemory())
	h := handler.New(svc, slog.Default())

	s.router = chi.NewRouter()
	h.Register(s.router)
}

func (s *ProfileHandlerSuite) upsert(userID string, body any) *httptest.ResponseRecorder {
	req := testutil.NewJSONRequest(s.T(), http.MethodPut, "/api/recruiter/profile", body)
	return testutil.DoRequest(s.router, testutil.WithUserID(req, userID))
}

func (s *ProfileHandlerSuite) TestGetWithoutProfile() {
	req := testutil.NewRequest(s.T(), http.MethodGet, "/api/recruiter/profile")
	rr := testutil.DoRequest(s.router, testutil.WithUserID(req, "user-1"))
	testutil.AssertStatus(s.T(), rr, http.StatusNotFound)
	testutil.AssertErrorMessage(s.T(), rr, "Profile not found")
}

func (s *ProfileHandlerSuite) TestUpsertFlow() {
	s.Run("empty body on first write is rejected", func() {
		rr := s.upsert("user-1", map[string]any{})
		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
		testutil.AssertErrorMessage(s.T(), rr, "Company name is required for new profile")
	})

	s.Run("first write creates", func() {
		rr := s.upsert("user-1", map[string]any{"companyName": "Acme"})
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		profile := testutil.UnmarshalResponse[models.RecruiterProfile](s.T(), rr)
		s.Equal("Acme", profile.CompanyName)
		s.Equal("user-1", profile.UserID)
		s.Nil(profile.Industry)
	})

	s.Run("second write updates the same row", func() {
		rr := s.upsert("user-1", map[string]any{"industry": "Fintech"})
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		profile := testutil.UnmarshalResponse[models.RecruiterProfile](s.T(), rr)
		s.Equal("Acme", profile.CompanyName)
		s.Require().NotNil(profile.Industry)
		s.Equal("Fintech", *profile.Industry)
		s.Equal(1, profile.ID)
	})

	s.Run("get returns the upserted profile", func() {
		req := testutil.NewRequest(s.T(), http.MethodGet, "/api/recruiter/profile")
		rr := testutil.DoRequest(s.router, testutil.WithUserID(req, "user-1"))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		profile := testutil.UnmarshalResponse[models.RecruiterProfile](s.T(), rr)
		s.Equal("Acme", profile.CompanyName)
	})
}

func (s *ProfileHandlerSuite) TestUpsertValidation() {
	s.Run("blank companyName rejected", func() {
		rr := s.upsert("user-1", map[string]any{"companyName": "   "})
		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
		testutil.AssertErrorField(s.T(), rr, "companyName")
	})

	s.Run("malformed body rejected", func() {
		req := testutil.NewRequestWithBody(s.T(), http.MethodPut, "/api/recruiter/profile", "{not json")
		rr := testutil.DoRequest(s.router, testutil.WithUserID(req, "user-1"))
		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})
}

func (s *ProfileHandlerSuite) TestUnauthenticatedContext() {
	req := testutil.NewRequest(s.T(), http.MethodGet, "/api/recruiter/profile")
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatus(s.T(), rr, http.StatusInternalServerError)
}
