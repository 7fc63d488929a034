package api

import (
	"errors"
	"net/http"

	"lushquote/internal/domain/pricing"
	reqdto "lushquote/internal/handler/dto/request"
	resdto "lushquote/internal/handler/dto/response"
	"lushquote/internal/handler/httperr"
	"lushquote/internal/handler/middleware"
	"lushquote/internal/usecase/commands"
	"lushquote/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the anonymous quote form: no auth, no owner data.
type PublicHandler struct {
	cmds    commands.SubmissionCommands
	q       queries.TemplateQueries
	metrics *middleware.Metrics
}

func NewPublicHandler(cmds commands.SubmissionCommands, q queries.TemplateQueries, metrics *middleware.Metrics) *PublicHandler {
	return &PublicHandler{cmds: cmds, q: q, metrics: metrics}
}

// @Summary Get public quote form
// @Description Get the public template by slug, including the limit flag
// @Tags public
// @Produce json
// @Param slug path string true "Template slug"
// @Success 200 {object} resdto.PublicTemplateResponse
// @Failure 404 {object} map[string]string
// @Router /public/templates/{slug} [get]
func (h *PublicHandler) GetTemplate(c *gin.Context) {
	view, err := h.q.GetPublicBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, queries.ErrTemplateNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Quote form not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPublicTemplateView(view))
}

// @Summary Submit quote request
// @Description Submit the quote form; the total is recomputed server-side
// @Tags public
// @Accept json
// @Produce json
// @Param slug path string true "Template slug"
// @Param request body reqdto.SubmitQuoteRequest true "Submission"
// @Success 201 {object} resdto.SubmitQuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /public/templates/{slug}/submissions [post]
func (h *PublicHandler) SubmitQuote(c *gin.Context) {
	var req reqdto.SubmitQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.SubmitQuote(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrQuoteFormNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Quote form not found", nil)
		case errors.Is(err, commands.ErrSubmissionLimitReached):
			h.metrics.CountSubmission("limit_reached")
			httperr.AbortWithError(c, http.StatusTooManyRequests, err,
				"This business has reached its monthly submission limit", nil)
		case errors.Is(err, commands.ErrSubmissionValidation):
			h.metrics.CountSubmission("rejected")
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid submission", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	h.metrics.CountSubmission("accepted")
	c.JSON(http.StatusCreated, resdto.SubmitQuoteResponse{
		SubmissionID:        result.SubmissionID,
		EstimatedTotalCents: result.EstimatedTotalCents,
		EstimatedTotal:      pricing.NewMoney(result.EstimatedTotalCents).Format(),
	})
}
