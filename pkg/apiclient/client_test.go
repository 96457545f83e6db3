package apiclient_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	alerthandler "talentradar/internal/alert/handler"
	alertModel "talentradar/internal/alert/models"
	alertservice "talentradar/internal/alert/service"
	alertstore "talentradar/internal/alert/store"
	router "talentradar/internal/http"
	newsletterhandler "talentradar/internal/newsletter/handler"
	newsletterservice "talentradar/internal/newsletter/service"
	newsletterstore "talentradar/internal/newsletter/store"
	recruiterhandler "talentradar/internal/recruiter/handler"
	profileModel "talentradar/internal/recruiter/models"
	recruiterservice "talentradar/internal/recruiter/service"
	recruiterstore "talentradar/internal/recruiter/store"
	"talentradar/internal/token"
	"talentradar/pkg/apiclient"
)

// ClientSuite runs the typed client against a real in-process server with
// in-memory stores, covering the full HTTP round trip.
type ClientSuite struct {
	suite.Suite
	server *httptest.Server
	tokens *token.JWTService
	client *apiclient.Client
	ctx    context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	logger := slog.Default()
	s.tokens = token.NewJWTService("test-signing-key", "talentradar")

	handler := router.NewRouter(router.Deps{
		Logger:       logger,
		JWTValidator: s.tokens,
		Alerts:       alerthandler.New(alertservice.New(alertstore.NewInMemory()), logger, nil),
		Recruiter:    recruiterhandler.New(recruiterservice.New(recruiterstore.NewInMemory()), logger),
		Newsletter:   newsletterhandler.New(newsletterservice.New(newsletterstore.NewInMemory()), logger, nil),
	})
	s.server = httptest.NewServer(handler)

	tok, err := s.tokens.GenerateAccessToken("user-1", time.Hour)
	s.Require().NoError(err)
	s.client = apiclient.New(s.server.URL, apiclient.WithToken(tok))
	s.ctx = context.Background()
}

func (s *ClientSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientSuite) clientFor(userID string) *apiclient.Client {
	tok, err := s.tokens.GenerateAccessToken(userID, time.Hour)
	s.Require().NoError(err)
	return apiclient.New(s.server.URL, apiclient.WithToken(tok))
}

func (s *ClientSuite) TestAlertLifecycle() {
	location := "Berlin"
	created, err := s.client.CreateAlert(s.ctx, &alertModel.CreateAlertRequest{
		Keywords:  "Go Engineer",
		Location:  &location,
		Frequency: "weekly",
	})
	s.Require().NoError(err)
	s.Equal("user-1", created.UserID)
	s.True(created.IsActive)

	alerts, err := s.client.ListAlerts(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(alerts, 1)

	inactive := false
	updated, err := s.client.UpdateAlert(s.ctx, created.ID, &alertModel.UpdateAlertRequest{IsActive: &inactive})
	s.Require().NoError(err)
	s.False(updated.IsActive)
	s.Equal("Go Engineer", updated.Keywords)

	got, err := s.client.GetAlert(s.ctx, created.ID)
	s.Require().NoError(err)
	s.False(got.IsActive)

	s.Require().NoError(s.client.DeleteAlert(s.ctx, created.ID))

	_, err = s.client.GetAlert(s.ctx, created.ID)
	var apiErr *apiclient.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusNotFound, apiErr.Status)
	s.Equal("Alert not found", apiErr.Message)
}

func (s *ClientSuite) TestValidationShortCircuitsLocally() {
	_, err := s.client.CreateAlert(s.ctx, &alertModel.CreateAlertRequest{})
	s.Require().Error(err)
	// Local validation, never an APIError.
	var apiErr *apiclient.APIError
	s.False(errors.As(err, &apiErr))
}

func (s *ClientSuite) TestCrossUserAccessForbidden() {
	created, err := s.client.CreateAlert(s.ctx, &alertModel.CreateAlertRequest{Keywords: "Go"})
	s.Require().NoError(err)

	intruder := s.clientFor("user-2")
	_, err = intruder.GetAlert(s.ctx, created.ID)
	var apiErr *apiclient.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusForbidden, apiErr.Status)
	s.Equal("Forbidden", apiErr.Message)
}

func (s *ClientSuite) TestUnauthenticatedRejected() {
	anon := apiclient.New(s.server.URL)
	_, err := anon.ListAlerts(s.ctx)
	var apiErr *apiclient.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusUnauthorized, apiErr.Status)
}

func (s *ClientSuite) TestProfileUpsert() {
	_, err := s.client.GetProfile(s.ctx)
	var apiErr *apiclient.APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusNotFound, apiErr.Status)

	industry := "Fintech"
	_, err = s.client.UpdateProfile(s.ctx, &profileModel.UpdateProfileRequest{Industry: &industry})
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusBadRequest, apiErr.Status)
	s.Equal("Company name is required for new profile", apiErr.Message)

	company := "Acme"
	created, err := s.client.UpdateProfile(s.ctx, &profileModel.UpdateProfileRequest{CompanyName: &company})
	s.Require().NoError(err)
	s.Equal("Acme", created.CompanyName)

	updated, err := s.client.UpdateProfile(s.ctx, &profileModel.UpdateProfileRequest{Industry: &industry})
	s.Require().NoError(err)
	s.Equal(created.ID, updated.ID)
	s.Require().NotNil(updated.Industry)
	s.Equal("Fintech", *updated.Industry)
}

func (s *ClientSuite) TestSubscribe() {
	s.Require().NoError(s.client.Subscribe(s.ctx, "visitor@example.com"))
	// Duplicate subscriptions succeed.
	s.Require().NoError(s.client.Subscribe(s.ctx, "visitor@example.com"))

	err := s.client.Subscribe(s.ctx, "not-an-email")
	s.Require().Error(err)
}

func (s *ClientSuite) TestHealthEndpoint() {
	resp, err := http.Get(s.server.URL + "/health")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
}
