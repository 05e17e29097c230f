package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_http_requests_total",
			Help: "Total HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)
	GuardRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_guard_rejections_total",
			Help: "Requests rejected by the session guard",
		},
		[]string{"route"},
	)
)

func init() {
	prometheus.MustRegister(Requests)
	prometheus.MustRegister(GuardRejections)
}

// Metrics counts finished requests per route and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		Requests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
