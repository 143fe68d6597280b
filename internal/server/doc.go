// Package server wires and runs the relay.
//
// It owns the HTTP server lifecycle and the background workers: startup,
// signal handling and graceful shutdown of both.
package server
