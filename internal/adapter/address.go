package adapter

import (
	"fmt"
	"net/url"
	"strings"
)

// WebsocketPath is where the relay accepts board connections.
const WebsocketPath = "/ws"

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidAddress)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// websocketURL turns a relay address into the ws:// or wss:// URL of the
// board endpoint.
func websocketURL(raw string) (string, error) {
	base, err := normalizeBaseURL(raw)
	if err != nil {
		return "", err
	}

	u, _ := url.Parse(base)
	switch u.Scheme {
	case "http", "ws":
		u.Scheme = "ws"
	case "https", "wss":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidAddress, u.Scheme)
	}
	u.Path = strings.TrimRight(u.Path, "/") + WebsocketPath

	return u.String(), nil
}
