// Package session owns connected-player state: the per-connection
// PlayerSession record and the process-wide Manager that indexes
// them by username and drives keep-alive liveness and broadcast fan-out.
package session

import (
	"bufio"
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/mc754/server/internal/registry"
)

const (
	keepAliveInterval = 10 * time.Second
	keepAliveTimeout  = 30 * time.Second
)

// PlayerSession is one connected, logged-in player: its socket, its last
// known position, and its keep-alive liveness bookkeeping. All fields are
// only ever touched while the owning SessionManager's lock is held.
type PlayerSession struct {
	Username string
	UUID     uuid.UUID

	conn   net.Conn
	writer *bufio.Writer

	X, Y, Z    float64
	Yaw, Pitch float32

	lastKeepAliveID int64
	lastSentAt      time.Time
	lastResponseAt  time.Time
}

// NewPlayerSession wraps an accepted, authenticated connection.
func NewPlayerSession(username string, id uuid.UUID, conn net.Conn) *PlayerSession {
	now := time.Now()
	return &PlayerSession{
		Username:       username,
		UUID:           id,
		conn:           conn,
		writer:         bufio.NewWriter(conn),
		Y:              64,
		lastSentAt:     now,
		lastResponseAt: now,
	}
}

// Send frames, writes, and flushes a client-bound packet.
func (s *PlayerSession) Send(p registry.ClientPacket) error {
	if err := registry.Send(s.writer, p); err != nil {
		return err
	}
	return s.writer.Flush()
}

// Close closes the underlying connection.
func (s *PlayerSession) Close() error {
	return s.conn.Close()
}

// UpdatePosition records a new position/look pair from a Player Position
// packet.
func (s *PlayerSession) UpdatePosition(x, y, z float64, yaw, pitch float32) {
	s.X, s.Y, s.Z = x, y, z
	s.Yaw, s.Pitch = yaw, pitch
}

// ShouldSendKeepAlive reports whether 10s have elapsed since the last
// keep-alive was sent to this session.
func (s *PlayerSession) ShouldSendKeepAlive(now time.Time) bool {
	return now.Sub(s.lastSentAt) >= keepAliveInterval
}

// TimedOut reports whether 30s have elapsed since the last keep-alive
// response, meaning the session must be evicted.
func (s *PlayerSession) TimedOut(now time.Time) bool {
	return now.Sub(s.lastResponseAt) >= keepAliveTimeout
}

// RecordKeepAliveSent stamps the ID and time of a keep-alive just sent.
func (s *PlayerSession) RecordKeepAliveSent(id int64, now time.Time) {
	s.lastKeepAliveID = id
	s.lastSentAt = now
}

// ObserveKeepAliveResponse records a response if id matches the last sent
// keep-alive ID; a stale or forged ID is silently ignored.
func (s *PlayerSession) ObserveKeepAliveResponse(id int64, now time.Time) {
	if id == s.lastKeepAliveID {
		s.lastResponseAt = now
	}
}
