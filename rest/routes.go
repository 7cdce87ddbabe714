package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) SetupRoutes(engine *echo.Echo) {
	engine.GET("/health", h.echoHandler(h.HealthCheck))
	engine.GET("/version", h.echoHandler(h.Version))
	engine.GET("/metrics", echo.WrapHandler(h.metricsHandler()))

	api := engine.Group("/api", RequestLogger())
	// v1 routes
	{
		apiV1 := api.Group("/v1")
		apiV1.GET("/status", h.echoHandler(h.GetStatus))
		apiV1.GET("/domains", h.echoHandler(h.ListDomains))
	}
}

func (h *Handler) metricsHandler() http.Handler {
	if h.Registry == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(h.Registry, promhttp.HandlerOpts{Registry: h.Registry})
}

func (h *Handler) echoHandler(handlerFunc func(w http.ResponseWriter, r *http.Request)) echo.HandlerFunc {
	return echo.WrapHandler(http.HandlerFunc(handlerFunc))
}
