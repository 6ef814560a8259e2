// Package session persists the client session: the bearer token under
// common.TokenStorageKey and the reduced user record under
// common.UserStorageKey.
//
// Store is a small key/value interface with two implementations: a SQLite
// store that survives restarts (migrated with goose) and an in-memory store
// for tests and throwaway sessions. Get on a missing key returns (nil, nil).
package session
