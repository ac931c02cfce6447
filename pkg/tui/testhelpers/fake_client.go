package testhelpers

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pluqqy/pluqqy-console/pkg/api"
)

// FakeClient is an in-memory api.Client. Responses are keyed by operation
// name; every request is recorded. Operations without a configured response
// return an empty data object, which the service reads as a null payload.
type FakeClient struct {
	mu        sync.Mutex
	responses map[string]fakeResult
	queries   []api.Request
	mutations []api.Request
}

type fakeResult struct {
	data   json.RawMessage
	errors api.GraphQLErrors
	err    error
}

var _ api.Client = (*FakeClient)(nil)

func NewFakeClient() *FakeClient {
	return &FakeClient{responses: make(map[string]fakeResult)}
}

// Respond makes op return data, marshalled as the GraphQL data object
func (f *FakeClient) Respond(op string, data any) *FakeClient {
	raw, err := json.Marshal(data)
	if err != nil {
		panic(fmt.Sprintf("testhelpers: cannot marshal response for %s: %v", op, err))
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[op] = fakeResult{data: raw}
	return f
}

// RespondErrors makes op return a GraphQL errors list
func (f *FakeClient) RespondErrors(op string, messages ...string) *FakeClient {
	errs := make(api.GraphQLErrors, len(messages))
	for i, msg := range messages {
		errs[i] = api.GraphQLError{Message: msg}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[op] = fakeResult{data: json.RawMessage("null"), errors: errs}
	return f
}

// Fail makes op fail at the transport level
func (f *FakeClient) Fail(op string, err error) *FakeClient {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[op] = fakeResult{err: err}
	return f
}

func (f *FakeClient) Query(ctx context.Context, req api.Request) (*api.Response, error) {
	f.mu.Lock()
	f.queries = append(f.queries, req)
	f.mu.Unlock()
	return f.result(ctx, req)
}

func (f *FakeClient) Mutate(ctx context.Context, req api.Request) (*api.Response, error) {
	f.mu.Lock()
	f.mutations = append(f.mutations, req)
	f.mu.Unlock()
	return f.result(ctx, req)
}

func (f *FakeClient) result(ctx context.Context, req api.Request) (*api.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	res, ok := f.responses[req.OperationName]
	f.mu.Unlock()
	if !ok {
		return &api.Response{Data: json.RawMessage("{}")}, nil
	}
	if res.err != nil {
		return nil, res.err
	}
	return &api.Response{Data: res.data, Errors: res.errors}, nil
}

// Queries returns the recorded queries named op, or all of them when op is ""
func (f *FakeClient) Queries(op string) []api.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return filter(f.queries, op)
}

// Mutations returns the recorded mutations named op, or all of them when op is ""
func (f *FakeClient) Mutations(op string) []api.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return filter(f.mutations, op)
}

func filter(reqs []api.Request, op string) []api.Request {
	out := make([]api.Request, 0, len(reqs))
	for _, r := range reqs {
		if op == "" || r.OperationName == op {
			out = append(out, r)
		}
	}
	return out
}
