package ports

type AdminPort interface {
	HandleMessage(msg *ChatMessage) error
	HandleNickChange(ev *NickChange)
	HandleQuit(ev *QuitEvent)
}

type SessionsPort interface {
	IsAuthenticated(nick string) bool
	Authenticate(nick string)
	Deauthenticate(nick string) bool
	Rename(oldNick, newNick string)
	Remove(nick string)
	Count() int
}
