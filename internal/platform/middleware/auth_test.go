package middleware_test

import (
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"talentradar/internal/platform/middleware"
	"talentradar/internal/token"
	"talentradar/pkg/testutil"
)

type RequireAuthSuite struct {
	suite.Suite
	tokens  *token.JWTService
	handler http.Handler
	seen    string
}

func TestRequireAuthSuite(t *testing.T) {
	suite.Run(t, new(RequireAuthSuite))
}

func (s *RequireAuthSuite) SetupTest() {
	s.tokens = token.NewJWTService("test-signing-key", "talentradar")
	s.seen = ""

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.seen = middleware.GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	s.handler = middleware.RequireAuth(s.tokens, slog.Default())(inner)
}

func (s *RequireAuthSuite) TestValidTokenPassesThrough() {
	tok, err := s.tokens.GenerateAccessToken("user-42", time.Hour)
	s.Require().NoError(err)

	req := testutil.NewRequest(s.T(), http.MethodGet, "/api/alerts")
	req.Header.Set("Authorization", "Bearer "+tok)

	rr := testutil.DoRequest(s.handler, req)
	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	s.Equal("user-42", s.seen)
}

func (s *RequireAuthSuite) TestMissingHeader() {
	req := testutil.NewRequest(s.T(), http.MethodGet, "/api/alerts")
	rr := testutil.DoRequest(s.handler, req)
	testutil.AssertStatus(s.T(), rr, http.StatusUnauthorized)
	testutil.AssertErrorMessage(s.T(), rr, "Missing or invalid Authorization header")
	s.Empty(s.seen)
}

func (s *RequireAuthSuite) TestNonBearerScheme() {
	req := testutil.NewRequest(s.T(), http.MethodGet, "/api/alerts")
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rr := testutil.DoRequest(s.handler, req)
	testutil.AssertStatus(s.T(), rr, http.StatusUnauthorized)
	testutil.AssertErrorMessage(s.T(), rr, "Missing or invalid Authorization header")
}

func (s *RequireAuthSuite) TestGarbageToken() {
	req := testutil.NewRequest(s.T(), http.MethodGet, "/api/alerts")
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rr := testutil.DoRequest(s.handler, req)
	testutil.AssertStatus(s.T(), rr, http.StatusUnauthorized)
	testutil.AssertErrorMessage(s.T(), rr, "Invalid or expired token")
}

func (s *RequireAuthSuite) TestExpiredToken() {
	tok, err := s.tokens.GenerateAccessToken("user-42", -time.Minute)
	s.Require().NoError(err)

	req := testutil.NewRequest(s.T(), http.MethodGet, "/api/alerts")
	req.Header.Set("Authorization", "Bearer "+tok)
	rr := testutil.DoRequest(s.handler, req)
	testutil.AssertStatus(s.T(), rr, http.StatusUnauthorized)
	testutil.AssertErrorMessage(s.T(), rr, "Invalid or expired token")
}

func (s *RequireAuthSuite) TestWrongSigningKey() {
	other := token.NewJWTService("different-key", "talentradar")
	tok, err := other.GenerateAccessToken("user-42", time.Hour)
	s.Require().NoError(err)

	req := testutil.NewRequest(s.T(), http.MethodGet, "/api/alerts")
	req.Header.Set("Authorization", "Bearer "+tok)
	rr := testutil.DoRequest(s.handler, req)
	testutil.AssertStatus(s.T(), rr, http.StatusUnauthorized)
}

func (s *RequireAuthSuite) TestEmptySubjectRejected() {
	tok, err := s.tokens.GenerateAccessToken("", time.Hour)
	s.Require().NoError(err)

	req := testutil.NewRequest(s.T(), http.MethodGet, "/api/alerts")
	req.Header.Set("Authorization", "Bearer "+tok)
	rr := testutil.DoRequest(s.handler, req)
	testutil.AssertStatus(s.T(), rr, http.StatusUnauthorized)
	testutil.AssertErrorMessage(s.T(), rr, "Invalid or expired token")
}

// failingValidator lets the rejection path be exercised without a real token.
type failingValidator struct{}

func (failingValidator) ValidateToken(string) (*middleware.JWTClaims, error) {
	return nil, errors.New("boom")
}

func (s *RequireAuthSuite) TestValidatorErrorIsUnauthorized() {
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := middleware.RequireAuth(failingValidator{}, slog.Default())(inner)

	req := testutil.NewRequest(s.T(), http.MethodGet, "/api/alerts")
	req.Header.Set("Authorization", "Bearer anything")
	rr := testutil.DoRequest(h, req)
	testutil.AssertStatus(s.T(), rr, http.StatusUnauthorized)
}
