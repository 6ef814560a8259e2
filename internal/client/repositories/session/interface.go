package session

import "context"

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetAll writes every pair or none of them.
	SetAll(ctx context.Context, values map[string][]byte) error
	// Remove deletes the keys; missing keys are not an error.
	Remove(ctx context.Context, keys ...string) error
}
