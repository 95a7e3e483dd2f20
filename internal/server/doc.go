// Package server wires and runs the relay's transport and background
// workers.
//
// It provides orchestration for the HTTP server lifecycle, including
// startup, signal handling, and graceful shutdown, and starts and stops
// the background maintenance workers alongside the transport.
package server
