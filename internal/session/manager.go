package session

import (
	"crypto/rand"
	"encoding/binary"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mc754/server/internal/metrics"
	"github.com/mc754/server/internal/registry"
)

// keepAliveCounter is a process-wide monotonic counter for keep-alive IDs,
// seeded from crypto/rand so IDs never collide across server restarts the
// way a Unix-seconds timestamp would.
var keepAliveCounter = newRandomCounter()

func newRandomCounter() *int64 {
	var seed [8]byte
	if _, err := rand.Read(seed[:]); err != nil {
		seed[0] = 1
	}
	v := int64(binary.BigEndian.Uint64(seed[:]))
	return &v
}

func nextKeepAliveID() int64 {
	return atomic.AddInt64(keepAliveCounter, 1)
}

// Manager is the process-global session registry: a username-keyed map
// guarded by a single reader/writer lock. Readers snapshot usernames;
// writers cover every mutation and every broadcast that issues writes, so
// broadcasts never interleave with each other or with inserts/removes.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*PlayerSession
	log      *logrus.Entry
	metrics  *metrics.Metrics
}

// NewManager builds an empty session manager. m may be nil in tests that
// don't care about instrumentation.
func NewManager(log *logrus.Entry, m *metrics.Metrics) *Manager {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Manager{
		sessions: make(map[string]*PlayerSession),
		log:      log,
		metrics:  m,
	}
}

func (m *Manager) countSent(n int) {
	if m.metrics != nil {
		m.metrics.PacketsSentTotal.Add(float64(n))
	}
}

// Insert adds a session, replacing any existing session under the same
// username.
func (m *Manager) Insert(s *PlayerSession) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.Username] = s
	if m.metrics != nil {
		m.metrics.SessionsOnline.Set(float64(len(m.sessions)))
	}
}

// Remove deletes a session by username and reports whether it was present.
func (m *Manager) Remove(username string) (*PlayerSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[username]
	if ok {
		delete(m.sessions, username)
		if m.metrics != nil {
			m.metrics.SessionsOnline.Set(float64(len(m.sessions)))
		}
	}
	return s, ok
}

// Get looks up a session by username.
func (m *Manager) Get(username string) (*PlayerSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[username]
	return s, ok
}

// NamesSnapshot returns every online username at the moment of the call.
func (m *Manager) NamesSnapshot() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.sessions))
	for name := range m.sessions {
		names = append(names, name)
	}
	return names
}

// Count reports the number of online sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Broadcast sends p to every session not named in exclude. A send error to
// one peer is logged and that peer is dropped from the manager; it does
// not abort the rest of the broadcast.
func (m *Manager) Broadcast(p registry.ClientPacket, exclude map[string]struct{}) {
	start := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	var faulted []string
	sent := 0
	for name, s := range m.sessions {
		if _, skip := exclude[name]; skip {
			continue
		}
		if err := s.Send(p); err != nil {
			m.log.WithError(err).WithField("username", name).Warn("broadcast send failed, dropping peer")
			faulted = append(faulted, name)
			continue
		}
		sent++
	}
	m.evictLocked(faulted)
	m.countSent(sent)
	if m.metrics != nil {
		m.metrics.BroadcastSeconds.Observe(time.Since(start).Seconds())
	}
}

// BroadcastTo sends p only to the sessions named in include.
func (m *Manager) BroadcastTo(p registry.ClientPacket, include map[string]struct{}) {
	start := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	var faulted []string
	sent := 0
	for name := range include {
		s, ok := m.sessions[name]
		if !ok {
			continue
		}
		if err := s.Send(p); err != nil {
			m.log.WithError(err).WithField("username", name).Warn("broadcast send failed, dropping peer")
			faulted = append(faulted, name)
			continue
		}
		sent++
	}
	m.evictLocked(faulted)
	m.countSent(sent)
	if m.metrics != nil {
		m.metrics.BroadcastSeconds.Observe(time.Since(start).Seconds())
	}
}

// BroadcastPosition sends the source session's current position as a
// Player Position And Look to every other session.
func (m *Manager) BroadcastPosition(source *PlayerSession) {
	packet := &registry.PlayerPositionAndLook{
		X: source.X, Y: source.Y, Z: source.Z,
		Yaw: source.Yaw, Pitch: source.Pitch,
	}
	m.Broadcast(packet, map[string]struct{}{source.Username: {}})
}

// TickKeepAlives sends a keep-alive to every session due for one and
// evicts every session that has timed out or whose keep-alive send failed,
// closing their connections and returning their usernames.
func (m *Manager) TickKeepAlives(now time.Time) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var faulted, timedOut []string
	for name, s := range m.sessions {
		if s.TimedOut(now) {
			timedOut = append(timedOut, name)
			continue
		}
		if s.ShouldSendKeepAlive(now) {
			id := nextKeepAliveID()
			if err := s.Send(&registry.KeepAliveClient{ID: id}); err != nil {
				m.log.WithError(err).WithField("username", name).Warn("keep-alive send failed, dropping peer")
				faulted = append(faulted, name)
				continue
			}
			s.RecordKeepAliveSent(id, now)
			m.countSent(1)
		}
	}

	evicted := append(faulted, timedOut...)
	m.evictLocked(evicted)
	return evicted
}

// evictLocked removes and closes sessions by name. Callers must hold mu.
func (m *Manager) evictLocked(names []string) {
	if len(names) == 0 {
		return
	}
	for _, name := range names {
		if s, ok := m.sessions[name]; ok {
			_ = s.Close()
			delete(m.sessions, name)
		}
	}
	if m.metrics != nil {
		m.metrics.SessionsOnline.Set(float64(len(m.sessions)))
	}
}
