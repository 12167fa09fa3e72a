package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glimpse_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// FeedPagesServed counts feed pages served by feed kind.
	FeedPagesServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glimpse_feed_pages_served_total",
		Help: "Total number of feed pages served",
	}, []string{"feed"})

	// ToggleOperations counts like/follow/repost toggles by kind and resulting state.
	ToggleOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glimpse_toggle_operations_total",
		Help: "Total number of toggle operations by kind and resulting state",
	}, []string{"kind", "state"})
)

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request instrumentation handler.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
