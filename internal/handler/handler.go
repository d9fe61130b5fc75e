package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/maxviazov/paging-service/internal/metrics"
	"github.com/maxviazov/paging-service/internal/service"
)

// Register mounts all public routes on the given engine.
// Accepts service layer dependencies for API endpoints.
func Register(r *gin.Engine, repo Pinger, pagingSvc service.PagingService, itemSvc service.ItemService, logger zerolog.Logger) {
	h := NewHealthHandler(repo)

	r.Use(RequestID(), AccessLog(logger), metrics.Middleware())

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewPagingHandler(pagingSvc).Register(api)
		NewItemHandler(itemSvc).Register(api)
	}
}
