package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/escola-api/internal/service"
)

const unmatchedRoute = "unmatched"

// Metrics records one observation per request, labelled by the matched route
// template so /turmas/1 and /turmas/2 share a series. Requests that match no
// route are grouped under "unmatched". Paths listed in skip (probes, the
// scrape endpoint) are not recorded.
func Metrics(metricsSvc *service.MetricsService, skip ...string) gin.HandlerFunc {
	ignored := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		ignored[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		if _, ok := ignored[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
