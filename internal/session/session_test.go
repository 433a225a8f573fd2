package session

import (
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestKeepAliveTiming(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	go drain(client)

	s := NewPlayerSession("TestPlayer", uuid.New(), server)
	now := time.Now()

	if s.ShouldSendKeepAlive(now) {
		t.Fatal("ShouldSendKeepAlive = true immediately after session creation")
	}
	if s.TimedOut(now) {
		t.Fatal("TimedOut = true immediately after session creation")
	}

	later := now.Add(11 * time.Second)
	if !s.ShouldSendKeepAlive(later) {
		t.Fatal("ShouldSendKeepAlive = false after 11s, want true")
	}

	s.RecordKeepAliveSent(42, later)
	s.ObserveKeepAliveResponse(99, later)
	if !s.TimedOut(later.Add(29 * time.Second)) {
		t.Fatal("a mismatched keep-alive id should not reset the response timer")
	}

	s.ObserveKeepAliveResponse(42, later.Add(5*time.Second))
	if s.TimedOut(later.Add(10 * time.Second)) {
		t.Fatal("a matching keep-alive id should reset the response timer")
	}
}

func drain(c net.Conn) {
	buf := make([]byte, 4096)
	for {
		if _, err := c.Read(buf); err != nil {
			return
		}
	}
}
