// Package http implements the HTTP transport layer of the relay.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, panic recovery, and
// rate limiting are handled here before requests are delegated to the
// service layer. The handlers read request bodies as raw bytes because the
// authentication signature covers the exact bytes transmitted.
package http
