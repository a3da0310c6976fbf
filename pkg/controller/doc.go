// Package controller holds the HTTP plumbing shared by the API handlers.
//
// Middlewares: WithLogger (request ID, request scoped logger, access log),
// WithCORS and RateLimiter (per key token buckets).
//
// Handlers use WriteJSON, WriteError and DecodeJSON to speak JSON through jx.
// WriteError turns an error's serrors kind into the HTTP status and the
// {code, message} body. AddAccessFields lets a handler tag the access log line.
package controller
