// Package server wires and runs the application's HTTP server.
//
// It provides orchestration of the server lifecycle: startup, signal
// handling, and graceful shutdown bounded by the configured timeout.
package server
