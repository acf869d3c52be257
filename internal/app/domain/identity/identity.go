package identity

import (
	"sync"
	"sync/atomic"
)

// Identity tracks the bot's own live protocol identity. The nick can
// change at runtime (remote NICK command), so the addressed-to-me filter
// always reads it from here.
type Identity struct {
	mu        sync.RWMutex
	nick      string
	connected atomic.Bool
}

func New(nick string) *Identity {
	i := &Identity{}
	i.SetNick(nick)

	return i
}

func (i *Identity) Nick() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.nick
}

func (i *Identity) SetNick(nick string) {
	i.mu.Lock()
	i.nick = nick
	i.mu.Unlock()
}

func (i *Identity) IsConnected() bool {
	return i.connected.Load()
}

func (i *Identity) SetConnected(connected bool) {
	i.connected.Store(connected)
}
