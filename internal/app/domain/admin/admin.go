package admin

import (
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"ircadmin/internal/app/adapters/metrics"
	"ircadmin/internal/app/infrastructure/config"
	"ircadmin/internal/app/infrastructure/storage"
	"ircadmin/internal/app/ports"
	"ircadmin/pkg/logger"
)

// Admin interprets private messages addressed to the bot: a login/logout
// lane open to anyone, and a remote-control lane for authenticated nicks.
// Nick changes and quits are fed in so authorization follows the live nick.
type Admin struct {
	log      logger.Logger
	manager  *config.Manager
	sessions ports.SessionsPort
	identity ports.IdentityPort
	sink     ports.ActionSink
	attempts ports.CachePort[int]
}

func New(log logger.Logger, manager *config.Manager, identity ports.IdentityPort, sink ports.ActionSink) *Admin {
	cfg := manager.Get()

	return &Admin{
		log:      log,
		manager:  manager,
		sessions: NewSessions(),
		identity: identity,
		sink:     sink,
		attempts: storage.NewCache[int](16, cfg.Admin.AttemptWindow),
	}
}

func (a *Admin) Sessions() ports.SessionsPort {
	return a.sessions
}

// HandleMessage processes one inbound private message. Registry mutations
// happen before any outbound emission, so a sink failure never leaves the
// session set inconsistent.
func (a *Admin) HandleMessage(msg *ports.ChatMessage) error {
	if msg.Target != a.identity.Nick() {
		return nil
	}
	metrics.MessagesTotal.Inc()

	text := strings.TrimSpace(msg.Text)
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}

	// The auth lane is matched before any authorization check and never
	// falls through to the command lane.
	switch strings.ToLower(fields[0]) {
	case "login":
		return a.handleLogin(msg.Sender, fields)
	case "logout":
		return a.handleLogout(msg.Sender)
	}

	if !a.sessions.IsAuthenticated(msg.Sender) {
		return nil
	}

	return a.dispatch(msg.Sender, text, fields)
}

func (a *Admin) handleLogin(sender string, fields []string) error {
	if len(fields) != 3 {
		// Malformed logins never reach the command lane; drop them.
		a.log.Debug("Malformed login ignored", slog.String("sender", sender))
		return nil
	}
	username, secret := fields[1], fields[2]

	if a.sessions.IsAuthenticated(sender) {
		return a.notice(sender, "Already logged in.")
	}

	cfg := a.manager.Get()
	if max := cfg.Admin.MaxLoginAttempts; max > 0 {
		if n, ok := a.attempts.Get(sender); ok && n >= max {
			metrics.AuthAttempts.With(prometheus.Labels{"outcome": "throttled"}).Inc()
			a.log.Warn("Login throttled", slog.String("sender", sender), slog.Int("attempts", n))
			return a.notice(sender, "Too many failed login attempts.")
		}
	}

	if !verifySecret(cfg.Admin.Passwords, username, secret) {
		n, _ := a.attempts.Get(sender)
		a.attempts.Set(sender, n+1)

		metrics.AuthAttempts.With(prometheus.Labels{"outcome": "invalid"}).Inc()
		a.log.Warn("Login failed", slog.String("sender", sender), slog.String("username", username))
		return a.notice(sender, "Invalid credentials.")
	}

	a.sessions.Authenticate(sender)
	a.attempts.ClearKey(sender)

	metrics.AuthAttempts.With(prometheus.Labels{"outcome": "success"}).Inc()
	metrics.AuthenticatedAdmins.Set(float64(a.sessions.Count()))
	a.log.Info("Login successful", slog.String("sender", sender), slog.String("username", username))
	return a.notice(sender, "Login successful.")
}

func (a *Admin) handleLogout(sender string) error {
	if !a.sessions.Deauthenticate(sender) {
		return a.notice(sender, "Not currently logged in.")
	}

	metrics.AuthenticatedAdmins.Set(float64(a.sessions.Count()))
	a.log.Info("Logout", slog.String("sender", sender))
	return a.notice(sender, "Successfully logged out.")
}

// HandleNickChange keeps authorization attached to a renamed nick. Pure
// registry mutation, nothing is emitted back to the protocol.
func (a *Admin) HandleNickChange(ev *ports.NickChange) {
	if a.sessions.IsAuthenticated(ev.OldNick) {
		a.log.Info("Admin renamed", slog.String("old", ev.OldNick), slog.String("new", ev.NewNick))
	}
	a.sessions.Rename(ev.OldNick, ev.NewNick)
	metrics.AuthenticatedAdmins.Set(float64(a.sessions.Count()))
}

// HandleQuit drops authorization for a disconnected nick, so a later
// reconnect under the same nick cannot inherit it.
func (a *Admin) HandleQuit(ev *ports.QuitEvent) {
	if a.sessions.IsAuthenticated(ev.Nick) {
		a.log.Info("Admin disconnected", slog.String("nick", ev.Nick), slog.String("reason", ev.Reason))
	}
	a.sessions.Remove(ev.Nick)
	metrics.AuthenticatedAdmins.Set(float64(a.sessions.Count()))
}

func (a *Admin) notice(target, text string) error {
	return a.sink.Do(&ports.Action{
		Type:   ports.ActionNotice,
		Target: target,
		Text:   text,
	})
}
