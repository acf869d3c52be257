package irc

import "strings"

// Message is one parsed RFC 1459 line.
type Message struct {
	Nick     string
	User     string
	Host     string
	Command  string
	Params   []string
	Trailing string
}

func ParseLine(line string) *Message {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return nil
	}

	msg := &Message{}

	if line[0] == ':' {
		spaceIdx := strings.IndexByte(line, ' ')
		if spaceIdx == -1 {
			return nil
		}
		prefix := line[1:spaceIdx]
		line = line[spaceIdx+1:]

		if excl := strings.IndexByte(prefix, '!'); excl != -1 {
			msg.Nick = prefix[:excl]
			rest := prefix[excl+1:]
			if at := strings.IndexByte(rest, '@'); at != -1 {
				msg.User = rest[:at]
				msg.Host = rest[at+1:]
			} else {
				msg.User = rest
			}
		} else {
			// server prefix, no user part
			msg.Nick = prefix
		}
	}

	if strings.HasPrefix(line, ":") {
		msg.Trailing = line[1:]
		line = ""
	} else if idx := strings.Index(line, " :"); idx != -1 {
		msg.Trailing = line[idx+2:]
		line = line[:idx]
	}

	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	msg.Command = strings.ToUpper(parts[0])
	msg.Params = parts[1:]

	return msg
}
