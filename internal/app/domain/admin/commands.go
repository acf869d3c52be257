package admin

import (
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"ircadmin/internal/app/adapters/metrics"
	"ircadmin/internal/app/ports"
)

// dispatch matches trimmed message text against the command table. The
// first rule whose leading keyword and required arguments match wins;
// anything else gets a "does not exist" notice. Trailing free-text
// arguments (reasons, topics, relayed text) keep their internal
// whitespace.
func (a *Admin) dispatch(sender, text string, fields []string) error {
	keyword := strings.ToLower(fields[0])
	command := strings.ToUpper(fields[0])

	switch {
	case keyword == "quit":
		_, reason := splitRest(text, 1)
		if reason == "" {
			reason = "Gone"
		}
		return a.emit(sender, command, &ports.Action{
			Type:   ports.ActionQuit,
			Reason: reason,
		}, slog.String("reason", reason))

	case keyword == "join":
		if len(fields) < 2 {
			return a.unknown(sender, command)
		}
		return a.emit(sender, command, &ports.Action{
			Type:    ports.ActionJoin,
			Channel: fields[1],
		}, slog.String("channel", fields[1]))

	case keyword == "part":
		if len(fields) < 2 {
			return a.unknown(sender, command)
		}
		_, reason := splitRest(text, 2)
		return a.emit(sender, command, &ports.Action{
			Type:    ports.ActionPart,
			Channel: fields[1],
			Reason:  reason,
		}, slog.String("channel", fields[1]), slog.String("reason", reason))

	case keyword == "mode":
		// channel + flags required; everything is passed through raw.
		if len(fields) < 3 {
			return a.unknown(sender, command)
		}
		raw := "MODE " + strings.Join(fields[1:], " ")
		return a.emit(sender, command, &ports.Action{
			Type: ports.ActionRaw,
			Text: raw,
		}, slog.String("raw", raw))

	case keyword == "topic":
		head, topic := splitRest(text, 2)
		if len(head) < 2 || topic == "" {
			return a.unknown(sender, command)
		}
		return a.emit(sender, command, &ports.Action{
			Type:    ports.ActionTopic,
			Channel: head[1],
			Text:    topic,
		}, slog.String("channel", head[1]), slog.String("topic", topic))

	case keyword == "kick":
		head, reason := splitRest(text, 3)
		if len(head) < 3 {
			return a.unknown(sender, command)
		}
		return a.emit(sender, command, &ports.Action{
			Type:    ports.ActionKick,
			Channel: head[1],
			User:    head[2],
			Reason:  reason,
		}, slog.String("channel", head[1]), slog.String("user", head[2]), slog.String("reason", reason))

	case keyword == "nick":
		if len(fields) < 2 {
			return a.unknown(sender, command)
		}
		return a.emit(sender, command, &ports.Action{
			Type: ports.ActionNick,
			Nick: fields[1],
		}, slog.String("old", a.identity.Nick()), slog.String("new", fields[1]))

	case strings.HasPrefix(keyword, "give"), strings.HasPrefix(keyword, "take"):
		return a.handlePrivileges(sender, command, fields)

	case keyword == "tell", keyword == "notify", keyword == "me":
		head, body := splitRest(text, 2)
		if len(head) < 2 || body == "" {
			return a.unknown(sender, command)
		}

		method := ports.RelayPrivmsg
		switch keyword {
		case "notify":
			method = ports.RelayNotice
		case "me":
			method = ports.RelayAction
		}
		return a.emit(sender, command, &ports.Action{
			Type:   ports.ActionRelay,
			Method: method,
			Target: head[1],
			Text:   body,
		}, slog.String("target", head[1]), slog.String("text", body))

	case keyword == "status":
		return a.handleStatus(sender)

	default:
		return a.unknown(sender, command)
	}
}

// handlePrivileges covers both the spaced ("give op #c nick") and fused
// ("giveops #c nick") spellings. A recognized verb with a bad level token
// gets the subcommand notice instead of the generic one.
func (a *Admin) handlePrivileges(sender, command string, fields []string) error {
	verb := strings.ToLower(fields[0][:4])

	direction := ports.PrivGrant
	if verb == "take" {
		direction = ports.PrivRevoke
	}

	levelTok := fields[0][4:]
	args := fields[1:]
	if levelTok == "" {
		if len(fields) < 2 {
			return a.unknown(sender, command)
		}
		levelTok = fields[1]
		args = fields[2:]
	}

	level, ok := parseLevel(levelTok)
	if !ok {
		return a.notice(sender, strings.ToUpper(verb)+" "+strings.ToUpper(levelTok)+" does not exist.")
	}

	if len(args) < 2 {
		return a.unknown(sender, command)
	}
	channel, nicks := args[0], args[1:]

	return a.emit(sender, strings.ToUpper(verb), &ports.Action{
		Type:      ports.ActionPrivileges,
		Channel:   channel,
		Direction: direction,
		Level:     level,
		Users:     nicks,
	}, slog.String("level", string(level)), slog.String("channel", channel), slog.Any("nicks", nicks))
}

func parseLevel(tok string) (ports.PrivLevel, bool) {
	switch strings.ToLower(tok) {
	case "op", "ops":
		return ports.PrivOperator, true
	case "hop", "hops":
		return ports.PrivHalfOp, true
	case "voice":
		return ports.PrivVoice, true
	}
	return "", false
}

// emit writes the audit record, then hands the action to the sink. A sink
// failure surfaces to the caller; the audit record already happened.
func (a *Admin) emit(sender, command string, action *ports.Action, args ...any) error {
	a.log.Info("Remote command",
		append([]any{slog.String("sender", sender), slog.String("command", command)}, args...)...)
	metrics.AdminCommands.With(prometheus.Labels{"command": command}).Inc()

	return a.sink.Do(action)
}

func (a *Admin) unknown(sender, command string) error {
	a.log.Debug("Unknown remote command", slog.String("sender", sender), slog.String("command", command))
	return a.notice(sender, command+" does not exist.")
}

// splitRest splits off the first n whitespace-delimited tokens and
// returns them with the untouched remainder of the line.
func splitRest(text string, n int) ([]string, string) {
	head := make([]string, 0, n)
	rest := strings.TrimSpace(text)

	for i := 0; i < n && rest != ""; i++ {
		if idx := strings.IndexAny(rest, " \t"); idx >= 0 {
			head = append(head, rest[:idx])
			rest = strings.TrimLeft(rest[idx+1:], " \t")
		} else {
			head = append(head, rest)
			rest = ""
		}
	}

	return head, rest
}
