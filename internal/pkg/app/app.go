package app

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	router "ircadmin/internal/app/adapters/http"
	"ircadmin/internal/app/adapters/irc"
	"ircadmin/internal/app/adapters/metrics"
	"ircadmin/internal/app/domain/admin"
	"ircadmin/internal/app/domain/identity"
	"ircadmin/internal/app/infrastructure/config"
	"ircadmin/internal/app/ports"
	"ircadmin/pkg/logger"
)

const configPath = "config.json"

func New() error {
	log := logger.New()

	manager, err := config.New(configPath)
	if err != nil {
		log.Fatal("Error loading config", err)
	}

	cfg := manager.Get()
	log.SetLogLevel(cfg.App.LogLevel)
	gin.SetMode(cfg.App.GinMode)

	prometheus.MustRegister(metrics.MessageProcessingTime)

	id := identity.New(cfg.IRC.Nick)

	var client ports.ChatPort = irc.New(logger.NewPrefixedLogger(log, "irc"), manager, id)

	adm := admin.New(logger.NewPrefixedLogger(log, "admin"), manager, id, client)
	client.SetHandler(adm)

	if err := client.Connect(); err != nil {
		return err
	}

	r := router.NewRouter(log, manager, id, adm.Sessions())
	return r.Run()
}
