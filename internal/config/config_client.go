package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// SessionsEnabled shows the session gate before the board.
	SessionsEnabled bool
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the relay address, "host:port" or a URL.
	HTTPAddress string
	// RequestTimeout bounds the websocket handshake and HTTP requests.
	RequestTimeout time.Duration
	// WriteTimeout bounds a single websocket write.
	WriteTimeout time.Duration
	// PingInterval is the websocket keepalive period.
	PingInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			SessionsEnabled: !cfg.App.DisableSessions,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			WriteTimeout:   cfg.Adapter.WriteTimeout,
			PingInterval:   cfg.Adapter.PingInterval,
		},
	}

	return clientCfg, clientCfg.validate()
}
