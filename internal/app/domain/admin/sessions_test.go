package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessions_AuthenticateIdempotent(t *testing.T) {
	s := NewSessions()

	s.Authenticate("alice")
	s.Authenticate("alice")

	assert.True(t, s.IsAuthenticated("alice"))
	assert.Equal(t, 1, s.Count())
}

func TestSessions_NoDuplicatesAcrossOperations(t *testing.T) {
	s := NewSessions()

	s.Authenticate("alice")
	s.Authenticate("bob")
	s.Rename("alice", "bob")

	assert.True(t, s.IsAuthenticated("bob"))
	assert.False(t, s.IsAuthenticated("alice"))
	assert.Equal(t, 1, s.Count())
}

func TestSessions_Deauthenticate(t *testing.T) {
	s := NewSessions()
	s.Authenticate("alice")

	assert.True(t, s.Deauthenticate("alice"))
	assert.False(t, s.IsAuthenticated("alice"))
	assert.False(t, s.Deauthenticate("alice"))
}

func TestSessions_RenameThenRemove(t *testing.T) {
	s := NewSessions()
	s.Authenticate("p")

	s.Rename("p", "q")
	assert.False(t, s.IsAuthenticated("p"))
	assert.True(t, s.IsAuthenticated("q"))

	s.Remove("q")
	assert.False(t, s.IsAuthenticated("p"))
	assert.False(t, s.IsAuthenticated("q"))
	assert.Equal(t, 0, s.Count())
}

func TestSessions_RenameNonMemberNoop(t *testing.T) {
	s := NewSessions()
	s.Authenticate("alice")

	s.Rename("mallory", "eve")

	assert.True(t, s.IsAuthenticated("alice"))
	assert.False(t, s.IsAuthenticated("eve"))
	assert.Equal(t, 1, s.Count())
}

func TestSessions_RemoveUnconditional(t *testing.T) {
	s := NewSessions()

	// removing an unknown nick must not panic or mutate anything
	s.Remove("ghost")
	assert.Equal(t, 0, s.Count())
}
