package session

import (
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestSession(t *testing.T, username string) (*PlayerSession, net.Conn) {
	t.Helper()
	serverSide, clientSide := net.Pipe()
	t.Cleanup(func() { serverSide.Close(); clientSide.Close() })
	return NewPlayerSession(username, uuid.New(), serverSide), clientSide
}

func TestManagerInsertRemoveGet(t *testing.T) {
	m := NewManager(nil, nil)
	s, clientSide := newTestSession(t, "Alice")
	go drain(clientSide)

	m.Insert(s)
	if got, ok := m.Get("Alice"); !ok || got != s {
		t.Fatal("Get did not return the inserted session")
	}
	if names := m.NamesSnapshot(); len(names) != 1 || names[0] != "Alice" {
		t.Fatalf("NamesSnapshot = %v, want [Alice]", names)
	}

	removed, ok := m.Remove("Alice")
	if !ok || removed != s {
		t.Fatal("Remove did not return the inserted session")
	}
	if _, ok := m.Get("Alice"); ok {
		t.Fatal("session still present after Remove")
	}
}

// TestBroadcastFanOut matches spec.md's broadcast scenario: three sessions,
// one sends a position update, the other two receive it and the sender
// does not.
func TestBroadcastFanOut(t *testing.T) {
	m := NewManager(nil, nil)

	a, aConn := newTestSession(t, "A")
	b, bConn := newTestSession(t, "B")
	c, cConn := newTestSession(t, "C")
	m.Insert(a)
	m.Insert(b)
	m.Insert(c)

	aReceived := make(chan struct{}, 1)
	go func() {
		buf := make([]byte, 4096)
		if _, err := aConn.Read(buf); err == nil {
			aReceived <- struct{}{}
		}
	}()

	bGotFrame := make(chan []byte, 1)
	go func() {
		buf := make([]byte, 4096)
		n, err := bConn.Read(buf)
		if err == nil {
			bGotFrame <- buf[:n]
		}
	}()
	cGotFrame := make(chan []byte, 1)
	go func() {
		buf := make([]byte, 4096)
		n, err := cConn.Read(buf)
		if err == nil {
			cGotFrame <- buf[:n]
		}
	}()

	a.UpdatePosition(1.5, 64.0, 2.5, 0, 0)
	m.BroadcastPosition(a)

	select {
	case <-bGotFrame:
	case <-time.After(time.Second):
		t.Fatal("B did not receive the broadcast position update")
	}
	select {
	case <-cGotFrame:
	case <-time.After(time.Second):
		t.Fatal("C did not receive the broadcast position update")
	}
	select {
	case <-aReceived:
		t.Fatal("A (the sender) should not receive its own broadcast")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTickKeepAlivesEvictsTimedOut(t *testing.T) {
	m := NewManager(nil, nil)
	s, clientSide := newTestSession(t, "Stale")
	go drain(clientSide)
	m.Insert(s)

	now := time.Now()
	s.lastResponseAt = now.Add(-31 * time.Second)

	evicted := m.TickKeepAlives(now)
	if len(evicted) != 1 || evicted[0] != "Stale" {
		t.Fatalf("evicted = %v, want [Stale]", evicted)
	}
	if _, ok := m.Get("Stale"); ok {
		t.Fatal("timed-out session still present after TickKeepAlives")
	}
}
