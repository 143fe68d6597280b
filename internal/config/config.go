// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// DefaultServerAddress is the address the board client connects to and the
// relay listens on when nothing else is configured.
const DefaultServerAddress = "localhost:5000"

// StructuredConfig is the top-level configuration container shared by the
// board client and the relay server. It is populated by merging defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings shared by both binaries.
	App App `envPrefix:"APP_"`

	// Server holds the relay's listen address and connection timings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's connection settings towards the relay.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings of the relay's background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string the relay reports on /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// DisableSessions makes the client skip the session gate and talk to the
	// relay's default board.
	// Env: APP_DISABLE_SESSIONS
	DisableSessions bool `env:"DISABLE_SESSIONS"`
}

// Server holds network and timing settings of the relay.
type Server struct {
	// HTTPAddress is the "host:port" the relay listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// WriteTimeout bounds a single websocket write to a peer.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// PingInterval is how often the relay pings idle peers.
	// Env: SERVER_PING_INTERVAL
	PingInterval time.Duration `env:"PING_INTERVAL"`

	// AllowedOrigins lists the browser origins allowed to open a websocket,
	// for example "http://localhost:3000". "*" allows any origin. When empty
	// only same-origin browsers and clients that send no Origin header, such
	// as the terminal client, are accepted.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter holds the client's transport settings.
type Adapter struct {
	// HTTPAddress is the relay address, "host:port" or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the websocket handshake and plain HTTP requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// WriteTimeout bounds a single websocket write.
	// Env: ADAPTER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// PingInterval is how often the client pings the relay.
	// Env: ADAPTER_PING_INTERVAL
	PingInterval time.Duration `env:"PING_INTERVAL"`
}

// Workers holds settings of the relay's background workers.
type Workers struct {
	// SessionIdleTTL is how long a session without members survives.
	// Env: WORKERS_SESSION_IDLE_TTL
	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL"`

	// ReapInterval is how often idle sessions are looked for.
	// Env: WORKERS_REAP_INTERVAL
	ReapInterval time.Duration `env:"REAP_INTERVAL"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: "dev"},
		Server: Server{
			HTTPAddress:  DefaultServerAddress,
			WriteTimeout: 10 * time.Second,
			PingInterval: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: 10 * time.Second,
			WriteTimeout:   10 * time.Second,
			PingInterval:   30 * time.Second,
		},
		Workers: Workers{
			SessionIdleTTL: 30 * time.Minute,
			ReapInterval:   time.Minute,
		},
	}
}

// GetStructuredConfig loads, merges and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
