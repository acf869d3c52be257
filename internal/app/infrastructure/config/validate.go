package config

import (
	"errors"
	"fmt"
	"strings"
)

func (m *Manager) validate(cfg *Config) error {
	// app
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if cfg.App.LogLevel != "" && !validLevels[cfg.App.LogLevel] {
		return fmt.Errorf("app.log_level must be one of trace, debug, info, warn, error; got %s", cfg.App.LogLevel)
	}

	// irc
	if cfg.IRC.Server == "" {
		return errors.New("irc.server is required")
	}
	if cfg.IRC.Transport != "" && cfg.IRC.Transport != "tcp" && cfg.IRC.Transport != "websocket" {
		return fmt.Errorf("irc.transport must be 'tcp' or 'websocket'; got %s", cfg.IRC.Transport)
	}
	if cfg.IRC.Nick == "" {
		return errors.New("irc.nick is required")
	}
	if cfg.IRC.User == "" {
		cfg.IRC.User = cfg.IRC.Nick
	}
	for _, ch := range cfg.IRC.Channels {
		if !strings.HasPrefix(ch, "#") {
			return fmt.Errorf("irc.channels entries must start with '#'; got %s", ch)
		}
	}
	if (cfg.IRC.RateLimit.Requests != 0 && cfg.IRC.RateLimit.Per == 0) ||
		(cfg.IRC.RateLimit.Requests == 0 && cfg.IRC.RateLimit.Per != 0) {
		return errors.New("irc.rate_limit.requests and irc.rate_limit.per must both be set or both be zero")
	}

	// admin
	if cfg.Admin.Passwords == nil {
		cfg.Admin.Passwords = make(map[string]string)
	}
	for user, secret := range cfg.Admin.Passwords {
		if user == "" || secret == "" {
			return errors.New("admin.passwords entries must have non-empty username and secret")
		}
	}
	if cfg.Admin.MaxLoginAttempts < 0 {
		return errors.New("admin.max_login_attempts must be >= 0")
	}
	if cfg.Admin.MaxLoginAttempts > 0 && cfg.Admin.AttemptWindow <= 0 {
		return errors.New("admin.attempt_window must be > 0 when max_login_attempts is set")
	}

	return nil
}
