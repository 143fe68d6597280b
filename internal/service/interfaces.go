package service

import (
	"context"
	"time"

	"github.com/MKhiriev/sticky-board/models"
)

// DefaultSessionCode names the board every peer starts in. Clients running
// without sessions never leave it.
const DefaultSessionCode = ""

// Peer is one connected board client as seen by the relay.
type Peer interface {
	ID() string
	// Send queues env for delivery to the peer. It must not block.
	Send(env models.Envelope) error
}

// SessionService routes board events between peers of the same session.
type SessionService interface {
	// Connect registers peer and places it on the default board.
	Connect(ctx context.Context, peer Peer)

	// Disconnect forgets the peer and its session membership.
	Disconnect(ctx context.Context, peerID string)

	// Handle applies one inbound event from peerID. Rejections the client
	// should see are answered with sessionError; the returned error is for
	// logging only.
	Handle(ctx context.Context, peerID string, env models.Envelope) error

	// Members lists the ids of peers currently in session code.
	Members(code string) []string

	// ReapIdle deletes sessions without members that have not changed for
	// ttl, returning their codes.
	ReapIdle(ctx context.Context, ttl time.Duration) []string
}

// SessionCodeGenerator produces candidate session codes.
type SessionCodeGenerator interface {
	SessionCode() string
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
