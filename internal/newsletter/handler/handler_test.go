package handler_test

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"talentradar/internal/newsletter/handler"
	"talentradar/internal/newsletter/models"
	"talentradar/internal/newsletter/service"
	"talentradar/internal/newsletter/store"
	"talentradar/pkg/testutil"
)

type NewsletterHandlerSuite struct {
	suite.Suite
	router chi.Router
	store  *store.InMemory
}

func TestNewsletterHandlerSuite(t *testing.T) {
	suite.Run(t, new(NewsletterHandlerSuite))
}

func (s *NewsletterHandlerSuite) SetupTest() {
	s.store = store.NewInMemory()
	h := handler.New(service.New(s.store), slog.Default(), nil)

	s.router = chi.NewRouter()
	h.Register(s.router)
}

func (s *NewsletterHandlerSuite) subscribe(body any) int {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/newsletter/subscribe", body)
	rr := testutil.DoRequest(s.router, req)
	return rr.Code
}

func (s *NewsletterHandlerSuite) TestSubscribe() {
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/newsletter/subscribe", map[string]any{
		"email": "recruiter@example.com",
	})
	rr := testutil.DoRequest(s.router, req)
	testutil.AssertStatus(s.T(), rr, http.StatusCreated)

	resp := testutil.UnmarshalResponse[models.SubscribeResponse](s.T(), rr)
	s.Equal("Successfully subscribed", resp.Message)
	s.Equal(1, s.store.Count())
}

func (s *NewsletterHandlerSuite) TestDuplicateSubscribeSucceeds() {
	s.Equal(http.StatusCreated, s.subscribe(map[string]any{"email": "dup@example.com"}))
	s.Equal(http.StatusCreated, s.subscribe(map[string]any{"email": "dup@example.com"}))
	s.Equal(1, s.store.Count())
}

func (s *NewsletterHandlerSuite) TestCaseVariantsCollapse() {
	s.Equal(http.StatusCreated, s.subscribe(map[string]any{"email": "Dup@Example.com"}))
	s.Equal(http.StatusCreated, s.subscribe(map[string]any{"email": "dup@example.com "}))
	s.Equal(1, s.store.Count())
}

func (s *NewsletterHandlerSuite) TestValidation() {
	s.Run("missing email", func() {
		req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/newsletter/subscribe", map[string]any{})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
		testutil.AssertErrorMessage(s.T(), rr, "email is required")
	})

	s.Run("malformed email", func() {
		rr := s.subscribe(map[string]any{"email": "nope"})
		s.Equal(http.StatusBadRequest, rr)
	})

	s.Run("malformed body", func() {
		req := testutil.NewRequestWithBody(s.T(), http.MethodPost, "/api/newsletter/subscribe", "{not json")
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusBadRequest)
	})

	s.Run("nothing stored on validation failure", func() {
		s.Equal(0, s.store.Count())
	})
}
