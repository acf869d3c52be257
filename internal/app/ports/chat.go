package ports

type ChatPort interface {
	ActionSink

	Connect() error
	SetHandler(handler AdminPort)
}

// ChatMessage is a PRIVMSG delivered by the IRC adapter.
type ChatMessage struct {
	Sender string
	Target string
	Text   string
}

type NickChange struct {
	OldNick string
	NewNick string
}

type QuitEvent struct {
	Nick   string
	Reason string
}
