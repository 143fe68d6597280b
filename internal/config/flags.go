package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a relay listen address in format [host]:[port]
//	-s relay address the client connects to, [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout client handshake/request timeout (e.g. "10s")
//	-write-timeout websocket write timeout for both sides
//	-ping-interval websocket ping interval for both sides
//	-session-ttl how long an empty session survives on the relay
//	-no-sessions skip the session gate in the client
//	-app-version version reported by the relay
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, clientAddress NetAddress
	var jsonConfigPath string
	var requestTimeout, writeTimeout, pingInterval, sessionTTL time.Duration
	var noSessions bool
	var appVersion string

	fs := flag.NewFlagSet("sticky-board", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Relay listen address host:port")
	fs.Var(&clientAddress, "s", "Relay address to connect to host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&writeTimeout, "write-timeout", 0, "Websocket write timeout (e.g., 10s)")
	fs.DurationVar(&pingInterval, "ping-interval", 0, "Websocket ping interval (e.g., 30s)")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Idle session lifetime (e.g., 30m)")
	fs.BoolVar(&noSessions, "no-sessions", false, "Disable the session gate")
	fs.StringVar(&appVersion, "app-version", "", "Version reported by the relay")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version:         appVersion,
			DisableSessions: noSessions,
		},
		Server: Server{
			HTTPAddress:  serverAddress.String(),
			WriteTimeout: writeTimeout,
			PingInterval: pingInterval,
		},
		Adapter: Adapter{
			HTTPAddress:    clientAddress.String(),
			RequestTimeout: requestTimeout,
			WriteTimeout:   writeTimeout,
			PingInterval:   pingInterval,
		},
		Workers: Workers{
			SessionIdleTTL: sessionTTL,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
