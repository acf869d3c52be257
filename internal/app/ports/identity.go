package ports

type IdentityPort interface {
	Nick() string
	SetNick(nick string)
	IsConnected() bool
	SetConnected(connected bool)
}
