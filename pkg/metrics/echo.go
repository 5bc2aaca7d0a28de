package metrics

import (
	echoprometheus "github.com/globocom/echo-prometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// AddEchoMiddleware records per-route request metrics and exposes them on
// GET /metrics.
func AddEchoMiddleware(e *echo.Echo) {
	e.Use(echoprometheus.MetricsMiddleware())
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
