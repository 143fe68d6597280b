// Package utils provides general-purpose helpers shared by the board client
// and the relay: typed context keys, identifier generators and the HTTP
// client wrapper.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// PeerIDCtxKey is the key under which the relay stores the identifier of the
// websocket peer a request belongs to.
var PeerIDCtxKey = contextKey("peerID")

// WithPeerID returns a copy of ctx carrying peerID.
func WithPeerID(ctx context.Context, peerID string) context.Context {
	return context.WithValue(ctx, PeerIDCtxKey, peerID)
}

// GetPeerIDFromContext retrieves the peer identifier from the context.
// ok is false when the value is missing or has an unexpected type.
func GetPeerIDFromContext(ctx context.Context) (string, bool) {
	peerID, ok := ctx.Value(PeerIDCtxKey).(string)
	return peerID, ok
}
