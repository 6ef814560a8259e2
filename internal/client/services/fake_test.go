package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/dmitrijs2005/jobmatch/internal/client/api"
	"github.com/dmitrijs2005/jobmatch/internal/client/config"
	"github.com/dmitrijs2005/jobmatch/internal/client/repositories/session"
	"github.com/dmitrijs2005/jobmatch/internal/common"
)

// ---- fake requester ----

type call struct {
	Method   string
	URL      string
	Body     any
	Field    string
	FileName string
	Content  string
	WithAuth bool
}

// fakeRequester records calls and answers from canned values keyed by
// "METHOD url".
type fakeRequester struct {
	Calls     []call
	Responses map[string]any
	Errs      map[string]error
}

func newFake() *fakeRequester {
	return &fakeRequester{Responses: map[string]any{}, Errs: map[string]error{}}
}

func (f *fakeRequester) Do(_ context.Context, method, url string, body, out any) error {
	f.Calls = append(f.Calls, call{Method: method, URL: url, Body: body})
	return f.answer(method+" "+url, out)
}

func (f *fakeRequester) DoMultipart(_ context.Context, url, field, fileName string, r io.Reader, withAuth bool, out any) error {
	b, _ := io.ReadAll(r)
	f.Calls = append(f.Calls, call{Method: "POST", URL: url, Field: field, FileName: fileName, Content: string(b), WithAuth: withAuth})
	return f.answer("POST "+url, out)
}

func (f *fakeRequester) answer(key string, out any) error {
	if err := f.Errs[key]; err != nil {
		return err
	}
	v, ok := f.Responses[key]
	if !ok || out == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func (f *fakeRequester) last() call {
	if len(f.Calls) == 0 {
		return call{}
	}
	return f.Calls[len(f.Calls)-1]
}

// ---- failing store ----

type brokenStore struct{ session.Store }

var errDisk = errors.New("disk full")

func (brokenStore) Get(context.Context, string) ([]byte, error)   { return nil, errDisk }
func (brokenStore) Set(context.Context, string, []byte) error      { return errDisk }
func (brokenStore) SetAll(context.Context, map[string][]byte) error { return errDisk }
func (brokenStore) Remove(context.Context, ...string) error         { return errDisk }

// ---- helpers ----

var testEndpoints = api.NewEndpoints(config.BaseURLs{API: "http://api.test/api", AIService: "http://ai.test"})

func seedSession(s session.Store, token, userJSON string) {
	_ = s.SetAll(context.Background(), map[string][]byte{
		common.TokenStorageKey: []byte(token),
		common.UserStorageKey:  []byte(userJSON),
	})
}
