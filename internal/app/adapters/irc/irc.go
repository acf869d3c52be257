package irc

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"ircadmin/internal/app/adapters/metrics"
	"ircadmin/internal/app/infrastructure/config"
	"ircadmin/internal/app/ports"
	"ircadmin/pkg/logger"
)

var ErrNotConnected = errors.New("not connected to IRC")

type IRC struct {
	log      logger.Logger
	manager  *config.Manager
	identity ports.IdentityPort
	handler  ports.AdminPort

	mu      sync.Mutex
	conn    transport
	limiter *rate.Limiter
	closing atomic.Bool
}

func New(log logger.Logger, manager *config.Manager, identity ports.IdentityPort) *IRC {
	cfg := manager.Get()

	var limiter *rate.Limiter
	if cfg.IRC.RateLimit.Requests > 0 {
		limiter = rate.NewLimiter(
			rate.Every(cfg.IRC.RateLimit.Per/time.Duration(cfg.IRC.RateLimit.Requests)),
			cfg.IRC.RateLimit.Requests,
		)
	}

	return &IRC{
		log:      log,
		manager:  manager,
		identity: identity,
		limiter:  limiter,
	}
}

// SetHandler wires the admin interpreter; must be called before Connect.
func (i *IRC) SetHandler(handler ports.AdminPort) {
	i.handler = handler
}

func (i *IRC) Connect() error {
	go i.run()
	return nil
}

func (i *IRC) run() {
	for !i.closing.Load() {
		err := i.connectAndListen()
		if i.closing.Load() {
			return
		}
		if err != nil {
			i.log.Warn("IRC connection lost, retrying...", slog.String("error", err.Error()))
			time.Sleep(5 * time.Second)
		}
	}
}

func (i *IRC) connectAndListen() error {
	cfg := i.manager.Get()

	conn, err := dial(&cfg.IRC)
	if err != nil {
		i.log.Error("Failed to connect to IRC server", err, slog.String("server", cfg.IRC.Server))
		return err
	}

	i.mu.Lock()
	i.conn = conn
	i.mu.Unlock()

	i.writeRaw("NICK " + cfg.IRC.Nick)
	i.writeRaw("USER " + cfg.IRC.User + " 0 * :" + cfg.IRC.RealName)

	return i.listen()
}

func (i *IRC) listen() error {
	i.log.Info("Listening on IRC")

	for {
		i.mu.Lock()
		conn := i.conn
		i.mu.Unlock()
		if conn == nil {
			return ErrNotConnected
		}

		line, err := conn.ReadLine()
		if err != nil {
			i.identity.SetConnected(false)
			metrics.Connected.Set(0)
			if !i.closing.Load() {
				i.log.Error("Failed to read line from IRC", err)
			}
			return err
		}

		// keep-alive
		if strings.HasPrefix(line, "PING") {
			i.writeRaw("PONG " + strings.TrimPrefix(line, "PING "))
			continue
		}

		msg := ParseLine(line)
		if msg == nil {
			continue
		}

		switch msg.Command {
		case "001":
			i.identity.SetConnected(true)
			metrics.Connected.Set(1)
			i.log.Info("Registered with IRC server", slog.String("nick", i.identity.Nick()))

			for _, ch := range i.manager.Get().IRC.Channels {
				i.writeRaw("JOIN " + ch)
			}

		case "433":
			i.log.Error("Nickname already in use", nil, slog.String("nick", i.identity.Nick()))

		case "PRIVMSG":
			i.handlePrivmsg(msg)

		case "NICK":
			newNick := msg.Trailing
			if newNick == "" && len(msg.Params) > 0 {
				newNick = msg.Params[0]
			}
			if msg.Nick == i.identity.Nick() {
				i.identity.SetNick(newNick)
			}
			i.handler.HandleNickChange(&ports.NickChange{OldNick: msg.Nick, NewNick: newNick})

		case "QUIT":
			i.handler.HandleQuit(&ports.QuitEvent{Nick: msg.Nick, Reason: msg.Trailing})

		case "JOIN", "PART":
			i.log.Debug("Channel membership change", slog.String("line", line))
		}
	}
}

func (i *IRC) handlePrivmsg(msg *Message) {
	if len(msg.Params) == 0 || msg.Nick == "" {
		return
	}

	start := time.Now()
	err := i.handler.HandleMessage(&ports.ChatMessage{
		Sender: msg.Nick,
		Target: msg.Params[0],
		Text:   msg.Trailing,
	})
	metrics.MessageProcessingTime.Observe(float64(time.Since(start).Milliseconds()))

	if err != nil {
		i.log.Error("Failed to process message", err, slog.String("sender", msg.Nick))
	}
}

func (i *IRC) writeRaw(line string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.conn != nil {
		_ = i.conn.WriteLine(line)
	}
}
