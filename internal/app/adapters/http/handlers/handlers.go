package handlers

import (
	"ircadmin/internal/app/infrastructure/config"
	"ircadmin/internal/app/ports"
	"ircadmin/pkg/logger"
)

type Handlers struct {
	log      logger.Logger
	manager  *config.Manager
	identity ports.IdentityPort
	sessions ports.SessionsPort
}

func New(log logger.Logger, manager *config.Manager, identity ports.IdentityPort, sessions ports.SessionsPort) *Handlers {
	return &Handlers{
		log:      log,
		manager:  manager,
		identity: identity,
		sessions: sessions,
	}
}
