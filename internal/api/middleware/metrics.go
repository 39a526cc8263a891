// Package middleware provides Echo middleware for deal-desk.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/deal-desk/internal/metrics"
)

// unmatchedRoute labels requests that hit no registered route so raw URLs
// (with embedded lead and listing IDs) never become label values.
const unmatchedRoute = "unmatched"

// healthPaths are not recorded in the request histogram. Each maps to the
// gauge it keeps up to date, or nil when nothing is tracked.
var healthPaths = map[string]prometheus.Gauge{
	"/metrics": nil,
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// Metrics returns Echo middleware that records request duration and status
// per route template.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if gauge, ok := healthPaths[c.Request().URL.Path]; ok {
				err := next(c)
				if gauge != nil {
					setUp(gauge, responseStatus(c, err))
				}
				return err
			}

			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" || route == "/*" {
				route = unmatchedRoute
			}
			labels := []string{
				c.Request().Method,
				route,
				strconv.Itoa(responseStatus(c, err)),
			}

			metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()

			return err
		}
	}
}

// responseStatus reports the status the client will see. Errors returned
// up the chain are written later by Echo's error handler, so the recorded
// response status is still 200 at this point.
func responseStatus(c echo.Context, err error) int {
	if err != nil && !c.Response().Committed {
		if he, ok := err.(*echo.HTTPError); ok {
			return he.Code
		}
		return 500
	}
	return c.Response().Status
}

func setUp(g prometheus.Gauge, status int) {
	if status >= 200 && status < 300 {
		g.Set(1)
		return
	}
	g.Set(0)
}
