// Package server wires and runs the application's HTTP server together with
// the background workers.
//
// It provides orchestration for the server lifecycle, including startup,
// signal handling, and graceful shutdown.
package server
