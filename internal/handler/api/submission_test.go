//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"lushquote/internal/handler/api"
	resdto "lushquote/internal/handler/dto/response"
	"lushquote/internal/usecase/commands"
	"lushquote/internal/usecase/queries"
	"lushquote/tests/common/builder"
	"lushquote/tests/common/httptest"
	commandsmock "lushquote/tests/mock/commands"
	queriesmock "lushquote/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SubmissionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSubmissionCommands
	mockQueries  *queriesmock.MockSubmissionQueries
	handler      *api.SubmissionHandler
	ownerID      uuid.UUID
}

func (s *SubmissionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.ownerID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSubmissionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSubmissionQueries(s.mockCtrl)
	s.handler = api.NewSubmissionHandler(s.mockCommands, s.mockQueries)

	// Stands in for the auth middleware.
	authed := s.router.Group("", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("owner_id", s.ownerID)
		}
	})
	authed.GET("/submissions", s.handler.List)
	authed.GET("/submissions/:id", s.handler.Get)
	authed.PATCH("/submissions/:id/status", s.handler.UpdateStatus)
	authed.DELETE("/submissions/:id", s.handler.Delete)
}

func (s *SubmissionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSubmissionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SubmissionHandlerTestSuite))
}

func (s *SubmissionHandlerTestSuite) TestList() {
	s.Run("success: lists without filters", func() {
		items := []*queries.SubmissionListItem{builder.NewSubmissionBuilder().BuildListItem()}
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.ownerID, queries.SubmissionListFilter{}).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/submissions", nil, "bearer-token")

		var response map[string][]resdto.SubmissionListItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response["submissions"], 1)
	})

	s.Run("success: applies template and status filters", func() {
		templateID := uuid.New()
		status := "new"
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.ownerID, queries.SubmissionListFilter{TemplateID: &templateID, Status: &status}).
			Return([]*queries.SubmissionListItem{}, nil).Times(1)

		url := "/submissions?template_id=" + templateID.String() + "&status=new"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 for a malformed template filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/submissions?template_id=nope", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid template_id")
	})

	s.Run("error: 401 without auth", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/submissions", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *SubmissionHandlerTestSuite) TestGet() {
	view := builder.NewSubmissionBuilder().WithStatus("viewed").BuildView()
	url := "/submissions/" + view.ID.String()

	s.Run("success: a first read reports the viewed status", func() {
		s.mockCommands.EXPECT().View(gomock.Any(), s.ownerID, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.SubmissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("viewed", response.Status)
	})

	s.Run("error: 404 for a missing or foreign submission", func() {
		s.mockCommands.EXPECT().View(gomock.Any(), s.ownerID, view.ID).
			Return(nil, commands.ErrSubmissionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Submission not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/submissions/nope", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *SubmissionHandlerTestSuite) TestUpdateStatus() {
	view := builder.NewSubmissionBuilder().WithStatus("contacted").BuildView()
	url := "/submissions/" + view.ID.String() + "/status"
	reqBody := map[string]string{"status": "contacted"}

	s.Run("success: returns the updated submission", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.ownerID, view.ID, "contacted").
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.ownerID, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.SubmissionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("contacted", response.Status)
	})

	s.Run("error: 422 on a disallowed transition", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.ownerID, view.ID, "contacted").
			Return(commands.ErrInvalidStatusChange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid status change")
	})

	s.Run("error: 404 when the submission is gone", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.ownerID, view.ID, "contacted").
			Return(commands.ErrSubmissionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Submission not found")
	})

	s.Run("error: 400 when the status field is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 500 on unexpected failures", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), s.ownerID, view.ID, "contacted").
			Return(errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *SubmissionHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/submissions/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.ownerID, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when already gone", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.ownerID, id).
			Return(commands.ErrSubmissionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Submission not found")
	})
}
