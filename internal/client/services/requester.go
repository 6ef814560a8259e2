package services

import (
	"context"
	"io"

	"github.com/dmitrijs2005/jobmatch/internal/client/api"
	"github.com/dmitrijs2005/jobmatch/internal/client/repositories/session"
	"github.com/dmitrijs2005/jobmatch/internal/common"
)

// Requester is the part of *api.Client the services depend on.
type Requester interface {
	Do(ctx context.Context, method, url string, body, out any) error
	DoMultipart(ctx context.Context, url, field, fileName string, r io.Reader, withAuth bool, out any) error
}

// TokenSource reads the bearer token straight from the session store, so
// the API client always sees the current session.
func TokenSource(store session.Store) api.TokenSource {
	return api.TokenFunc(func(ctx context.Context) (string, error) {
		b, err := store.Get(ctx, common.TokenStorageKey)
		if err != nil {
			return "", err
		}
		return string(b), nil
	})
}
