package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/udaan-api/internal/dto"
	"github.com/noah-isme/udaan-api/internal/service"
)

type readinessProbe interface {
	Ready() bool
	Status() dto.CatalogStatus
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics *service.MetricsService
	catalog readinessProbe
}

// NewMetricsHandler constructs a metrics handler.
func NewMetricsHandler(metrics *service.MetricsService, catalog readinessProbe) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, catalog: catalog}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health responds with a generic OK payload for liveness checks.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports 200 only once the scholarship catalog can be filtered.
func (h *MetricsHandler) Ready(c *gin.Context) {
	if h.catalog == nil || !h.catalog.Ready() {
		status := dto.CatalogStatus{State: "loading"}
		if h.catalog != nil {
			status = h.catalog.Status()
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "catalog": status})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
