package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ircadmin/internal/app/adapters/http/handlers"
	"ircadmin/internal/app/adapters/http/middlewares"
	"ircadmin/internal/app/infrastructure/config"
	"ircadmin/internal/app/ports"
	"ircadmin/pkg/logger"
)

type Router struct {
	router      *gin.Engine
	handlers    *handlers.Handlers
	middlewares *middlewares.Middlewares

	log     logger.Logger
	manager *config.Manager
}

func NewRouter(log logger.Logger, manager *config.Manager, identity ports.IdentityPort, sessions ports.SessionsPort) *Router {
	r := &Router{
		router:      gin.Default(),
		handlers:    handlers.New(log, manager, identity, sessions),
		middlewares: middlewares.New(),
		log:         log,
		manager:     manager,
	}
	cfg := manager.Get()

	r.router.GET("/healthz", r.handlers.HealthHandler)

	protected := r.router.Group("/")
	if cfg.App.AuthToken != "" {
		protected.Use(r.middlewares.Auth(cfg.App.AuthToken))
	}
	protected.GET("/metrics", gin.WrapH(promhttp.Handler()))
	protected.GET("/status", r.handlers.StatusHandler)

	return r
}

func (r *Router) Run() error {
	return r.router.Run(r.manager.Get().App.HTTPAddr)
}
