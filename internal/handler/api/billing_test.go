//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"lushquote/internal/handler/api"
	"lushquote/internal/pkg/errs"
	"lushquote/internal/usecase/commands"
	"lushquote/tests/common/httptest"
	commandsmock "lushquote/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BillingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBillingCommands
	handler      *api.BillingHandler
	ownerID      uuid.UUID
}

func (s *BillingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.ownerID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBillingCommands(s.mockCtrl)
	s.handler = api.NewBillingHandler(s.mockCommands)

	// Stands in for the auth middleware.
	authed := s.router.Group("", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("owner_id", s.ownerID)
		}
	})
	authed.POST("/billing/checkout", s.handler.CreateCheckoutSession)
	authed.POST("/billing/portal", s.handler.CreatePortalSession)
	s.router.POST("/webhooks/stripe", s.handler.Webhook)
}

func (s *BillingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBillingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BillingHandlerTestSuite))
}

func (s *BillingHandlerTestSuite) TestCreateCheckoutSession() {
	s.Run("success: returns the checkout url", func() {
		s.mockCommands.EXPECT().CreateCheckoutSession(gomock.Any(), s.ownerID).
			Return("https://checkout.stripe.com/session/abc", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/billing/checkout", nil, "bearer-token")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("https://checkout.stripe.com/session/abc", response["url"])
	})

	s.Run("error: 502 when the provider is down", func() {
		s.mockCommands.EXPECT().CreateCheckoutSession(gomock.Any(), s.ownerID).
			Return("", commands.ErrCheckoutFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/billing/checkout", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Failed to start checkout")
	})

	s.Run("error: 401 without auth", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/billing/checkout", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *BillingHandlerTestSuite) TestCreatePortalSession() {
	s.Run("success: returns the portal url", func() {
		s.mockCommands.EXPECT().CreatePortalSession(gomock.Any(), s.ownerID).
			Return("https://billing.stripe.com/portal/xyz", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/billing/portal", nil, "bearer-token")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("https://billing.stripe.com/portal/xyz", response["url"])
	})

	s.Run("error: 404 for owners without a billing account", func() {
		s.mockCommands.EXPECT().CreatePortalSession(gomock.Any(), s.ownerID).
			Return("", commands.ErrNoStripeCustomer).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/billing/portal", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No billing account")
	})
}

func (s *BillingHandlerTestSuite) TestWebhook() {
	payload := map[string]string{"id": "evt_1"}

	s.Run("success: returns 200 on an accepted event", func() {
		s.mockCommands.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/webhooks/stripe", payload, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on a bad signature", func() {
		s.mockCommands.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(commands.ErrWebhookInvalid).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/webhooks/stripe", payload, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid webhook")
	})

	s.Run("error: 400 when the signature failure arrives marked on a cause", func() {
		s.mockCommands.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errs.Mark(errs.New("signature verification failed"), commands.ErrWebhookInvalid)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/webhooks/stripe", payload, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid webhook")
	})
}
