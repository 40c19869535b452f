package api

import (
	"fmt"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/examkit/proctor/pkg/metrics"
	"github.com/examkit/proctor/pkg/version"
)

// healthHandler handles GET /healthz. The database is the only hard
// dependency: its failure makes the service unhealthy (503). A cache outage
// degrades the service but chat keeps working, so it still reports 200.
func (s *Server) healthHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	status := "healthy"
	checks := make(map[string]HealthCheck)

	if s.db != nil {
		if hs, err := s.db.Health(ctx); err != nil {
			status = "unhealthy"
			checks["database"] = HealthCheck{Status: "unhealthy", Message: err.Error()}
		} else {
			checks["database"] = HealthCheck{
				Status:  hs.Status,
				Message: fmt.Sprintf("response time %s", hs.ResponseTime),
			}
		}
	}

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			if status == "healthy" {
				status = "degraded"
			}
			checks["cache"] = HealthCheck{Status: "unhealthy", Message: err.Error()}
		} else {
			checks["cache"] = HealthCheck{Status: "healthy"}
		}
	}

	if s.worker != nil {
		wh := s.worker.Health()
		checks["judge_worker"] = HealthCheck{
			Status:  wh.Status,
			Message: fmt.Sprintf("%d tasks processed", wh.TasksProcessed),
		}
	}

	code := http.StatusOK
	if status == "unhealthy" {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}

// metricsHandler serves the Prometheus registry on GET /metrics.
func (s *Server) metricsHandler(c *echo.Context) error {
	metrics.Handler().ServeHTTP(c.Response(), c.Request())
	return nil
}
