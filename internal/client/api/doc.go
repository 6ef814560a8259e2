// Package api is the HTTP gateway used by every JobMatch client service.
//
// A Client attaches the JSON content type, the bearer token (when the
// TokenSource has one) and a request id to each call, and turns non-2xx
// responses into *Error values whose message is taken from the response
// body. Multipart uploads go through DoMultipart, which leaves the
// Content-Type to the multipart encoder so the boundary is preserved.
//
// Endpoints are computed once from the resolved base URLs; nothing in this
// package reads the environment.
package api
