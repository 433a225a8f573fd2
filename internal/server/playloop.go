package server

import (
	"bufio"
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mc754/server/internal/protocol"
	"github.com/mc754/server/internal/registry"
	"github.com/mc754/server/internal/session"
)

// runPlayLoop reads packets from the connection until it closes or sends
// something malformed enough to abort. The keep-alive ticker is a separate
// goroutine; this loop only reacts to what the client sends.
func (s *Server) runPlayLoop(sess *session.PlayerSession, r *bufio.Reader, log *logrus.Entry) error {
	for {
		frame, err := protocol.ReadFrame(r)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, protocol.ErrUnexpectedEOF) {
				return nil
			}
			return err
		}

		if err := s.dispatchPlayPacket(sess, frame, log); err != nil {
			log.WithError(err).WithField("packet_id", frame.ID).Debug("malformed packet, closing connection")
			return err
		}
	}
}

// dispatchPlayPacket handles one play-phase packet per spec.md §4.6's
// switch. Unknown packet IDs are logged and dropped, not treated as fatal.
func (s *Server) dispatchPlayPacket(sess *session.PlayerSession, frame *protocol.Frame, log *logrus.Entry) error {
	switch frame.ID {
	case registry.KeepAliveServerID:
		ka := &registry.KeepAliveServer{}
		if err := ka.Decode(frame); err != nil {
			return err
		}
		sess.ObserveKeepAliveResponse(ka.ID, time.Now())

	case registry.PlayerPositionID:
		pos := &registry.PlayerPosition{}
		if err := pos.Decode(frame); err != nil {
			return err
		}
		sess.UpdatePosition(pos.X, pos.Y, pos.Z, pos.Yaw, pos.Pitch)
		s.sessions.BroadcastPosition(sess)

	case registry.ClientSettingsID:
		settings := &registry.ClientSettings{}
		if err := settings.Decode(frame); err != nil {
			return err
		}
		log.WithField("locale", settings.Locale).Debug("client settings received")

	default:
		log.WithField("packet_id", frame.ID).Debug("dropping unhandled packet")
	}
	return nil
}
