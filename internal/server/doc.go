// Package server wires and runs the configuration API's HTTP server.
//
// It owns the listener lifecycle: startup, cancellation through the caller's
// context and graceful shutdown bounded by the configured timeout.
package server
