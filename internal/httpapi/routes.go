package httpapi

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"plivo-mcp/internal/audit"
	"plivo-mcp/internal/auth"
	"plivo-mcp/internal/gateway"
	"plivo-mcp/internal/rbac"
	"plivo-mcp/pkg/logger"
)

type RouterOptions struct {
	Logger   *slog.Logger
	Gateway  *gateway.Gateway
	Auth     *auth.Manager
	Registry *prometheus.Registry
	Audit    *audit.Service
}

// NewRouter wires HTTP routes to handlers.
// Keep this file free of business logic.
func NewRouter(opts RouterOptions) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))

	h := Handlers{Gateway: opts.Gateway, Audit: opts.Audit}

	// public
	r.GET("/healthz", h.Health)
	if opts.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/v1")
	v1.Use(auth.RequireAccessToken(opts.Auth))
	{
		tools := v1.Group("/tools")
		tools.GET("", rbac.RequireAnyRole(rbac.RoleOperator, rbac.RoleViewer), h.ListTools)
		tools.POST("/:name", rbac.RequireToolAccess(gateway.IsReadOnly), h.InvokeTool)
	}

	return r
}
