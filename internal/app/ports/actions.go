package ports

type ActionType string

const (
	ActionNotice     ActionType = "notice"
	ActionRaw        ActionType = "raw"
	ActionQuit       ActionType = "quit"
	ActionJoin       ActionType = "join"
	ActionPart       ActionType = "part"
	ActionTopic      ActionType = "topic"
	ActionKick       ActionType = "kick"
	ActionNick       ActionType = "nick"
	ActionPrivileges ActionType = "privileges"
	ActionRelay      ActionType = "relay"
)

type RelayMethod string

const (
	RelayPrivmsg RelayMethod = "privmsg"
	RelayNotice  RelayMethod = "notice"
	RelayAction  RelayMethod = "action"
)

type PrivDirection string

const (
	PrivGrant  PrivDirection = "grant"
	PrivRevoke PrivDirection = "revoke"
)

type PrivLevel string

const (
	PrivOperator PrivLevel = "op"
	PrivHalfOp   PrivLevel = "hop"
	PrivVoice    PrivLevel = "voice"
)

// Action is the structured instruction handed to the chat adapter.
// Type selects which fields are meaningful.
type Action struct {
	Type      ActionType
	Target    string
	Channel   string
	User      string
	Nick      string
	Text      string
	Reason    string
	Method    RelayMethod
	Direction PrivDirection
	Level     PrivLevel
	Users     []string
}

type ActionSink interface {
	Do(action *Action) error
}
