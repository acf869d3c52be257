package irc

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"ircadmin/internal/app/adapters/metrics"
	"ircadmin/internal/app/ports"
)

// Do translates one structured action into its wire line and sends it
// through the flood limiter. A QUIT action also tears the connection down
// and stops the reconnect loop.
func (i *IRC) Do(action *ports.Action) error {
	line, err := encodeAction(action)
	if err != nil {
		return err
	}

	if i.limiter != nil {
		if err := i.limiter.Wait(context.Background()); err != nil {
			return err
		}
	}

	i.mu.Lock()
	conn := i.conn
	i.mu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}

	if err := conn.WriteLine(line); err != nil {
		return err
	}
	metrics.ActionsOut.With(prometheus.Labels{"type": string(action.Type)}).Inc()

	if action.Type == ports.ActionQuit {
		i.closing.Store(true)
		i.identity.SetConnected(false)
		metrics.Connected.Set(0)
		_ = conn.Close()
	}

	return nil
}

func encodeAction(a *ports.Action) (string, error) {
	switch a.Type {
	case ports.ActionNotice:
		return "NOTICE " + a.Target + " :" + a.Text, nil

	case ports.ActionRaw:
		return a.Text, nil

	case ports.ActionQuit:
		return "QUIT :" + a.Reason, nil

	case ports.ActionJoin:
		return "JOIN " + ensureChannel(a.Channel), nil

	case ports.ActionPart:
		if a.Reason != "" {
			return "PART " + ensureChannel(a.Channel) + " :" + a.Reason, nil
		}
		return "PART " + ensureChannel(a.Channel), nil

	case ports.ActionTopic:
		return "TOPIC " + ensureChannel(a.Channel) + " :" + a.Text, nil

	case ports.ActionKick:
		if a.Reason != "" {
			return "KICK " + ensureChannel(a.Channel) + " " + a.User + " :" + a.Reason, nil
		}
		return "KICK " + ensureChannel(a.Channel) + " " + a.User, nil

	case ports.ActionNick:
		return "NICK " + a.Nick, nil

	case ports.ActionPrivileges:
		sign := "+"
		if a.Direction == ports.PrivRevoke {
			sign = "-"
		}

		mode := map[ports.PrivLevel]string{
			ports.PrivOperator: "o",
			ports.PrivHalfOp:   "h",
			ports.PrivVoice:    "v",
		}[a.Level]
		if mode == "" {
			return "", fmt.Errorf("unknown privilege level %q", a.Level)
		}

		return "MODE " + ensureChannel(a.Channel) + " " +
			sign + strings.Repeat(mode, len(a.Users)) + " " +
			strings.Join(a.Users, " "), nil

	case ports.ActionRelay:
		switch a.Method {
		case ports.RelayPrivmsg:
			return "PRIVMSG " + a.Target + " :" + a.Text, nil
		case ports.RelayNotice:
			return "NOTICE " + a.Target + " :" + a.Text, nil
		case ports.RelayAction:
			return "PRIVMSG " + a.Target + " :\x01ACTION " + a.Text + "\x01", nil
		}
		return "", fmt.Errorf("unknown relay method %q", a.Method)
	}

	return "", fmt.Errorf("unknown action type %q", a.Type)
}

func ensureChannel(channel string) string {
	if !strings.HasPrefix(channel, "#") {
		return "#" + channel
	}
	return channel
}
