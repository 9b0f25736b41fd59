// Package http implements the HTTP transport layer of the form relay.
//
// It exposes route wiring, request handlers, and middleware used by the
// submission API. Cross-cutting concerns such as request tracing, access
// logging and panic recovery are handled in this package before requests are
// delegated to the service layer.
package http
