package cmd

import (
	"context"
	"fmt"

	"gitlab.com/nunet/sample-store/db/repositories"
	repositories_memory "gitlab.com/nunet/sample-store/db/repositories/memory"
)

type MockUtilsService struct {
	responses map[string][]byte
	errors    map[string]error
	requests  map[string][]byte
}

// SetResponseFor is a helper method. It sets a mock response for a specific method and endpoint
func (mu *MockUtilsService) SetResponseFor(method, endpoint string, resp []byte) {
	key := method + ":" + endpoint
	if mu.responses == nil {
		mu.responses = make(map[string][]byte)
	}

	mu.responses[key] = resp
}

// SetErrorFor makes the given method and endpoint fail with err
func (mu *MockUtilsService) SetErrorFor(method, endpoint string, err error) {
	key := method + ":" + endpoint
	if mu.errors == nil {
		mu.errors = make(map[string]error)
	}

	mu.errors[key] = err
}

func (mu *MockUtilsService) ResponseBody(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	key := method + ":" + endpoint
	if mu.requests == nil {
		mu.requests = make(map[string][]byte)
	}
	mu.requests[key] = body

	if err, ok := mu.errors[key]; ok {
		return nil, err
	}

	response, ok := mu.responses[key]
	if !ok {
		return nil, fmt.Errorf("no mock set for method: %s, endpoint: %s", method, endpoint)
	}

	return response, nil
}

// memoryStore returns an opener handing out the same in-memory repository
// and a counter of how many times it was closed.
func memoryStore() (storeOpener, repositories.SampleRepository, *int) {
	repo := repositories_memory.NewSampleRepository()
	closed := 0
	open := func() (repositories.SampleRepository, func() error, error) {
		return repo, func() error {
			closed++
			return nil
		}, nil
	}
	return open, repo, &closed
}
