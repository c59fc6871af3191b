// README: HTTP server; registers routes and delegates to the pooling service.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"carpool/internal/http/middleware"
	"carpool/internal/modules/pooling"
)

type ServerDeps struct {
	Pooling *pooling.Service
}

type Server struct {
	pooling *pooling.Service
	metrics *metrics
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		pooling: deps.Pooling,
		metrics: newMetrics(deps.Pooling),
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logging())
	r.Use(s.metrics.Handler())

	r.GET("/status", s.HandleStatus)
	r.PUT("/cars", s.HandleLoadCars)
	r.POST("/journey", s.HandleJourney)
	r.POST("/dropoff", s.HandleDropoff)
	r.POST("/locate", s.HandleLocate)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	return r
}
