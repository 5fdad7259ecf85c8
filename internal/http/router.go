// README: HTTP router registration.
package http

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"travelcalc/internal/http/handlers"
	"travelcalc/internal/http/middleware"
)

type RouterDeps struct {
	Calculator  handlers.Calculator
	CORSOrigins []string
	// Registry backs /metrics. A fresh registry is used when nil.
	Registry *prometheus.Registry
}

func NewRouter(deps RouterDeps) http.Handler {
	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	r := gin.New()
	// Recovery sits inside Logging and metrics so panicked requests are still logged and counted.
	r.Use(
		middleware.CorrelationID(),
		middleware.Logging(),
		middleware.NewHTTPMetrics(reg).Handler(),
		middleware.Recovery(),
		newCORS(deps.CORSOrigins),
	)

	travelHandler := handlers.NewTravelHandler(deps.Calculator, reg)
	api := r.Group("/api")
	api.POST("/travel/calculate", travelHandler.Calculate)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return r
}

func newCORS(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.CorrelationIDHeader}
	cfg.ExposeHeaders = []string{middleware.CorrelationIDHeader}
	return cors.New(cfg)
}
