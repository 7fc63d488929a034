package components

import (
	"lushquote/internal/handler"
	"lushquote/internal/handler/api"
	"lushquote/internal/handler/middleware"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewRegisterer,
		middleware.NewMetrics,
		middleware.NewAuthMiddleware,
		api.NewAuthHandler,
		api.NewTemplateHandler,
		api.NewSubmissionHandler,
		api.NewPublicHandler,
		api.NewBillingHandler,
		api.NewDashboardHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

// NewRegisterer hands the default registry to the metrics middleware so
// promhttp.Handler serves what it records.
func NewRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}

func NewHandlers(
	auth *api.AuthHandler,
	template *api.TemplateHandler,
	submission *api.SubmissionHandler,
	public *api.PublicHandler,
	billing *api.BillingHandler,
	dashboard *api.DashboardHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		Template:   template,
		Submission: submission,
		Public:     public,
		Billing:    billing,
		Dashboard:  dashboard,
	}
}
