package irc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ircadmin/internal/app/ports"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want *Message
	}{
		{
			name: "privmsg_to_bot",
			line: ":bob!bob@host.example PRIVMSG mybot :login alice secret",
			want: &Message{
				Nick: "bob", User: "bob", Host: "host.example",
				Command: "PRIVMSG", Params: []string{"mybot"}, Trailing: "login alice secret",
			},
		},
		{
			name: "privmsg_trailing_keeps_colons",
			line: ":bob!b@h PRIVMSG #chan :see: this has :colons",
			want: &Message{
				Nick: "bob", User: "b", Host: "h",
				Command: "PRIVMSG", Params: []string{"#chan"}, Trailing: "see: this has :colons",
			},
		},
		{
			name: "nick_change",
			line: ":bob!bob@host NICK :bob_away",
			want: &Message{
				Nick: "bob", User: "bob", Host: "host",
				Command: "NICK", Params: []string{}, Trailing: "bob_away",
			},
		},
		{
			name: "quit",
			line: ":bob!bob@host QUIT :Ping timeout",
			want: &Message{
				Nick: "bob", User: "bob", Host: "host",
				Command: "QUIT", Params: []string{}, Trailing: "Ping timeout",
			},
		},
		{
			name: "server_numeric",
			line: ":irc.example.net 001 mybot :Welcome to IRC",
			want: &Message{
				Nick:    "irc.example.net",
				Command: "001", Params: []string{"mybot"}, Trailing: "Welcome to IRC",
			},
		},
		{
			name: "no_prefix",
			line: "PING :irc.example.net",
			want: &Message{Command: "PING", Params: []string{}, Trailing: "irc.example.net"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLine(tt.line)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLine_Empty(t *testing.T) {
	assert.Nil(t, ParseLine(""))
	assert.Nil(t, ParseLine("\r\n"))
}

func TestEncodeAction(t *testing.T) {
	tests := []struct {
		name   string
		action ports.Action
		want   string
	}{
		{
			name:   "notice",
			action: ports.Action{Type: ports.ActionNotice, Target: "bob", Text: "Login successful."},
			want:   "NOTICE bob :Login successful.",
		},
		{
			name:   "raw",
			action: ports.Action{Type: ports.ActionRaw, Text: "MODE #test +m"},
			want:   "MODE #test +m",
		},
		{
			name:   "quit",
			action: ports.Action{Type: ports.ActionQuit, Reason: "Gone"},
			want:   "QUIT :Gone",
		},
		{
			name:   "join_adds_hash",
			action: ports.Action{Type: ports.ActionJoin, Channel: "test"},
			want:   "JOIN #test",
		},
		{
			name:   "part_with_reason",
			action: ports.Action{Type: ports.ActionPart, Channel: "#test", Reason: "bye"},
			want:   "PART #test :bye",
		},
		{
			name:   "part_without_reason",
			action: ports.Action{Type: ports.ActionPart, Channel: "#test"},
			want:   "PART #test",
		},
		{
			name:   "topic",
			action: ports.Action{Type: ports.ActionTopic, Channel: "#test", Text: "hello world"},
			want:   "TOPIC #test :hello world",
		},
		{
			name:   "kick_with_reason",
			action: ports.Action{Type: ports.ActionKick, Channel: "#test", User: "eve", Reason: "spamming here"},
			want:   "KICK #test eve :spamming here",
		},
		{
			name:   "nick",
			action: ports.Action{Type: ports.ActionNick, Nick: "newbot"},
			want:   "NICK newbot",
		},
		{
			name: "give_ops_multi",
			action: ports.Action{
				Type: ports.ActionPrivileges, Channel: "#test",
				Direction: ports.PrivGrant, Level: ports.PrivOperator, Users: []string{"eve", "mallory"},
			},
			want: "MODE #test +oo eve mallory",
		},
		{
			name: "take_voice",
			action: ports.Action{
				Type: ports.ActionPrivileges, Channel: "#test",
				Direction: ports.PrivRevoke, Level: ports.PrivVoice, Users: []string{"eve"},
			},
			want: "MODE #test -v eve",
		},
		{
			name:   "relay_privmsg",
			action: ports.Action{Type: ports.ActionRelay, Method: ports.RelayPrivmsg, Target: "eve", Text: "hi"},
			want:   "PRIVMSG eve :hi",
		},
		{
			name:   "relay_notice",
			action: ports.Action{Type: ports.ActionRelay, Method: ports.RelayNotice, Target: "#test", Text: "heads up"},
			want:   "NOTICE #test :heads up",
		},
		{
			name:   "relay_ctcp_action",
			action: ports.Action{Type: ports.ActionRelay, Method: ports.RelayAction, Target: "#test", Text: "waves"},
			want:   "PRIVMSG #test :\x01ACTION waves\x01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeAction(&tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeAction_Unknown(t *testing.T) {
	_, err := encodeAction(&ports.Action{Type: "teleport"})
	assert.Error(t, err)

	_, err = encodeAction(&ports.Action{Type: ports.ActionRelay, Method: "smoke"})
	assert.Error(t, err)
}
