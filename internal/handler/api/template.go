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

type TemplateHandler struct {
	cmds commands.TemplateCommands
	q    queries.TemplateQueries
}

func NewTemplateHandler(cmds commands.TemplateCommands, q queries.TemplateQueries) *TemplateHandler {
	return &TemplateHandler{cmds: cmds, q: q}
}

// @Summary Create template
// @Description Create a quote template; free tier allows a single template
// @Tags templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.TemplateRequest true "Template"
// @Success 201 {object} resdto.TemplateResponse
// @Failure 400 {object} map[string]string
// @Failure 402 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	templateID, err := h.cmds.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTemplateLimitReached):
			httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Template limit reached, upgrade to premium", nil)
		case errors.Is(err, commands.ErrSlugTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slug already in use", nil)
		case errors.Is(err, commands.ErrTemplateValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid template", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), ownerID, templateID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load template", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTemplateView(view))
}

// @Summary List templates
// @Description List the owner's templates
// @Tags templates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TemplateResponse
// @Router /templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list templates", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": resdto.FromTemplateList(views)})
}

// @Summary Get template
// @Description Get one of the owner's templates by id
// @Tags templates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 200 {object} resdto.TemplateResponse
// @Failure 404 {object} map[string]string
// @Router /templates/{id} [get]
func (h *TemplateHandler) Get(c *gin.Context) {
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

	view, err := h.q.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		if errors.Is(err, queries.ErrTemplateNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Template not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTemplateView(view))
}

// @Summary Update template
// @Description Replace the template's settings and full services array
// @Tags templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Param request body reqdto.TemplateRequest true "Template"
// @Success 200 {object} resdto.TemplateResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /templates/{id} [put]
func (h *TemplateHandler) Update(c *gin.Context) {
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
	var req reqdto.TemplateRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), ownerID, id, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrTemplateNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Template not found", nil)
		case errors.Is(err, commands.ErrSlugTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slug already in use", nil)
		case errors.Is(err, commands.ErrTemplateValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid template", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load template", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTemplateView(view))
}

// @Summary Delete template
// @Description Delete a template and all of its submissions
// @Tags templates
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /templates/{id} [delete]
func (h *TemplateHandler) Delete(c *gin.Context) {
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
		if errors.Is(err, commands.ErrTemplateNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Template not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
