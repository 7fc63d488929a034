package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lushquote/internal/handler/api"
	"lushquote/internal/handler/middleware"
	"lushquote/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Template   *api.TemplateHandler
	Submission *api.SubmissionHandler
	Public     *api.PublicHandler
	Billing    *api.BillingHandler
	Dashboard  *api.DashboardHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, metrics *middleware.Metrics) {
	setupMiddleware(engine, cfg, metrics)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, metrics *middleware.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(metrics.Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Anonymous surface: the public quote form and the billing webhook.
	public := engine.Group("/public")
	{
		addRoutes(public, []route{
			{Method: http.MethodGet, Path: "/templates/:slug", Handler: h.Public.GetTemplate},
			{Method: http.MethodPost, Path: "/templates/:slug/submissions", Handler: h.Public.SubmitQuote},
		})
	}
	engine.POST("/webhooks/stripe", h.Billing.Webhook)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		templates := apiGroup.Group("/templates")
		templates.Use(authMiddleware.RequireAuth())
		{
			addRoutes(templates, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Template.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Template.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Template.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Template.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Template.Delete},
			})
		}

		submissions := apiGroup.Group("/submissions")
		submissions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(submissions, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Submission.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Submission.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Submission.UpdateStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Submission.Delete},
			})
		}

		billing := apiGroup.Group("/billing")
		billing.Use(authMiddleware.RequireAuth())
		{
			addRoutes(billing, []route{
				{Method: http.MethodPost, Path: "/checkout", Handler: h.Billing.CreateCheckoutSession},
				{Method: http.MethodPost, Path: "/portal", Handler: h.Billing.CreatePortalSession},
			})
		}

		dashboard := apiGroup.Group("/dashboard")
		dashboard.Use(authMiddleware.RequireAuth())
		{
			addRoutes(dashboard, []route{
				{Method: http.MethodGet, Path: "/stats", Handler: h.Dashboard.Stats},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
