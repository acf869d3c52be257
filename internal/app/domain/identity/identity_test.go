package identity

import (
	"strconv"
	"testing"
)

func BenchmarkIdentity_Nick(b *testing.B) {
	i := New("testbot")
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = i.Nick()
	}
}

func BenchmarkIdentity_SetNick(b *testing.B) {
	i := New("testbot")
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		i.SetNick("testbot" + strconv.Itoa(n%16))
	}
}

func BenchmarkIdentity_IsConnected(b *testing.B) {
	i := New("testbot")
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_ = i.IsConnected()
	}
}

func TestIdentity_NickFollowsSet(t *testing.T) {
	i := New("testbot")
	if i.Nick() != "testbot" {
		t.Fatalf("unexpected nick %q", i.Nick())
	}

	i.SetNick("otherbot")
	if i.Nick() != "otherbot" {
		t.Fatalf("unexpected nick %q", i.Nick())
	}
}
