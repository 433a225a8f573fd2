package server

import (
	"bufio"
	"fmt"
	"net"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mc754/server/internal/protocol"
	"github.com/mc754/server/internal/registry"
	"github.com/mc754/server/internal/session"
)

// handleConnection drives one accepted TCP connection end to end:
// handshake, then either a status reply or a full login-to-play run. It
// never lets an error escape to the accept loop (spec.md §7).
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()
	log := s.log.WithField("remote", conn.RemoteAddr().String())
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("internal error, dropping connection")
		}
	}()

	reader := bufio.NewReader(conn)

	handshake, err := readHandshake(reader)
	if err != nil {
		log.WithError(err).Debug("handshake failed")
		return
	}

	switch handshake.NextState {
	case registry.NextStateStatus:
		if err := s.handleStatus(conn, reader); err != nil {
			log.WithError(err).Debug("status exchange failed")
		}
	case registry.NextStateLogin:
		if err := s.handleLogin(conn, reader, log); err != nil {
			log.WithError(err).Debug("login/play session ended")
		}
	default:
		log.WithField("next_state", handshake.NextState).Debug("unknown handshake next state")
	}
}

// readHandshake reads and decodes the opening Handshake packet.
func readHandshake(r *bufio.Reader) (*registry.Handshake, error) {
	frame, err := protocol.ReadFrame(r)
	if err != nil {
		return nil, err
	}
	if frame.ID != registry.HandshakeID {
		return nil, fmt.Errorf("expected handshake packet id %#x, got %#x", registry.HandshakeID, frame.ID)
	}
	h := &registry.Handshake{}
	if err := h.Decode(frame); err != nil {
		return nil, err
	}
	return h, nil
}

// handleStatus serves a single server-list-ping exchange: Status Request
// then Status Response, followed by an optional ping/pong.
func (s *Server) handleStatus(conn net.Conn, r *bufio.Reader) error {
	frame, err := protocol.ReadFrame(r)
	if err != nil {
		return err
	}
	if frame.ID != registry.StatusRequestID {
		return fmt.Errorf("expected status request, got packet %#x", frame.ID)
	}

	resp := &registry.StatusResponse{
		VersionName:     "1.16.5",
		ProtocolVersion: protocolVersion,
		MaxPlayers:      int(s.cfg.MaxPlayers),
		OnlinePlayers:   s.sessions.Count(),
		Description:     s.cfg.MOTD,
	}
	if err := registry.Send(conn, resp); err != nil {
		return err
	}

	// Optional ping: some clients close right after Status Response.
	pingFrame, err := protocol.ReadFrame(r)
	if err != nil {
		return nil
	}
	return protocol.WriteFrame(conn, pingFrame)
}

// handleLogin completes the login phase, derives the offline-mode UUID,
// registers the session, runs the play bootstrap, and then the play loop.
func (s *Server) handleLogin(conn net.Conn, r *bufio.Reader, log *logrus.Entry) error {
	frame, err := protocol.ReadFrame(r)
	if err != nil {
		return err
	}
	if frame.ID != registry.LoginStartID {
		return fmt.Errorf("expected login start, got packet %#x", frame.ID)
	}
	loginStart := &registry.LoginStart{}
	if err := loginStart.Decode(frame); err != nil {
		return err
	}
	username := loginStart.Username
	if len(username) == 0 || len(username) > 16 {
		disconnect := &registry.LoginDisconnect{Reason: "invalid username length"}
		_ = registry.Send(conn, disconnect)
		return fmt.Errorf("invalid username %q", username)
	}

	playerUUID := uuid.NewMD5(uuid.NameSpaceDNS, []byte("OfflinePlayer:"+username))
	if err := registry.Send(conn, &registry.LoginSuccess{UUID: protocol.UUID(playerUUID), Username: username}); err != nil {
		return err
	}

	sess := session.NewPlayerSession(username, playerUUID, conn)
	s.sessions.Insert(sess)
	log = log.WithField("username", username)
	log.Info("player joined")
	defer func() {
		s.sessions.Remove(username)
		log.Info("player left")
	}()

	if err := s.runBootstrap(sess); err != nil {
		return err
	}
	return s.runPlayLoop(sess, r, log)
}
