// Package http implements the relay's HTTP transport.
//
// It wires the chi router with request tracing, access logging and panic
// recovery, serves the version endpoint and upgrades /ws requests to
// websocket connections whose frames are handed to the session service.
package http
