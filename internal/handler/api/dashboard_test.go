//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"lushquote/internal/domain/tier"
	"lushquote/internal/handler/api"
	resdto "lushquote/internal/handler/dto/response"
	"lushquote/internal/usecase/queries"
	"lushquote/tests/common/httptest"
	queriesmock "lushquote/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockDashboardQueries
	handler     *api.DashboardHandler
	ownerID     uuid.UUID
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.ownerID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockDashboardQueries(s.mockCtrl)
	s.handler = api.NewDashboardHandler(s.mockQueries)

	s.router.GET("/dashboard/stats", func(c *gin.Context) {
		// Stands in for the auth middleware.
		if c.GetHeader("Authorization") != "" {
			c.Set("owner_id", s.ownerID)
		}
		s.handler.Stats(c)
	})
}

func (s *DashboardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func (s *DashboardHandlerTestSuite) TestStats() {
	s.Run("success: returns the aggregated stats", func() {
		limit := tier.FreeMonthlySubmissionLimit
		s.mockQueries.EXPECT().GetStats(gomock.Any(), s.ownerID).
			Return(&queries.DashboardStats{
				TemplateCount:          1,
				TotalSubmissions:       12,
				SubmissionsByStatus:    map[string]int{"new": 8, "completed": 4},
				MonthlySubmissionCount: 9,
				MonthlySubmissionLimit: &limit,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard/stats", nil, "bearer-token")

		var response resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(12, response.TotalSubmissions)
		s.Require().NotNil(response.MonthlySubmissionLimit)
		s.Equal(limit, *response.MonthlySubmissionLimit)
	})

	s.Run("error: 401 without auth", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/dashboard/stats", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
