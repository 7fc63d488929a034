package api

import (
	"errors"
	"net/http"

	reqdto "lushquote/internal/handler/dto/request"
	resdto "lushquote/internal/handler/dto/response"
	"lushquote/internal/handler/httperr"
	"lushquote/internal/handler/middleware"
	"lushquote/internal/usecase/commands"
	"lushquote/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SubmissionHandler struct {
	cmds commands.SubmissionCommands
	q    queries.SubmissionQueries
}

func NewSubmissionHandler(cmds commands.SubmissionCommands, q queries.SubmissionQueries) *SubmissionHandler {
	return &SubmissionHandler{cmds: cmds, q: q}
}

// @Summary List submissions
// @Description List the owner's submissions, optionally filtered by template and status
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param template_id query string false "Template ID filter"
// @Param status query string false "Status filter"
// @Success 200 {array} resdto.SubmissionListItemResponse
// @Failure 400 {object} map[string]string
// @Router /submissions [get]
func (h *SubmissionHandler) List(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var filter queries.SubmissionListFilter
	if v := c.Query("template_id"); v != "" {
		templateID, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid template_id", nil)
			return
		}
		filter.TemplateID = &templateID
	}
	if v := c.Query("status"); v != "" {
		filter.Status = &v
	}

	items, err := h.q.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list submissions", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": resdto.FromSubmissionList(items)})
}

// @Summary Get submission
// @Description Get one submission; a first view moves it from new to viewed
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Success 200 {object} resdto.SubmissionResponse
// @Failure 404 {object} map[string]string
// @Router /submissions/{id} [get]
func (h *SubmissionHandler) Get(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.cmds.View(c.Request.Context(), ownerID, id)
	if err != nil {
		if errors.Is(err, commands.ErrSubmissionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Submission not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubmissionView(view))
}

// @Summary Update submission status
// @Description Move the submission along the one-way status pipeline
// @Tags submissions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Param request body reqdto.UpdateSubmissionStatusRequest true "New status"
// @Success 200 {object} resdto.SubmissionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /submissions/{id}/status [patch]
func (h *SubmissionHandler) UpdateStatus(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateSubmissionStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpdateStatus(c.Request.Context(), ownerID, id, req.Status); err != nil {
		switch {
		case errors.Is(err, commands.ErrSubmissionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Submission not found", nil)
		case errors.Is(err, commands.ErrInvalidStatusChange):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid status change", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load submission", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSubmissionView(view))
}

// @Summary Delete submission
// @Description Delete a submission permanently
// @Tags submissions
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /submissions/{id} [delete]
func (h *SubmissionHandler) Delete(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), ownerID, id); err != nil {
		if errors.Is(err, commands.ErrSubmissionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Submission not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
