// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"

	"github.com/playlisto/playlisto/internal/shared"
)

// MockGenerator is a test double for [services.Generator].
//
// Returns Response unless Err is set; records every prompt it receives.
type MockGenerator struct {
	Response string
	Err      error
	Prompts  []string
}

func (m *MockGenerator) Recommend(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func (m *MockGenerator) Name() string { return "mock-generator" }

// MockSearcher is a test double for [services.VideoSearcher].
//
// Results maps "title|artist" to a video id; anything absent resolves to a
// shared.ErrNoResults error. Queries records lookup order.
type MockSearcher struct {
	Results map[string]string
	Err     error
	Queries []string
}

func (m *MockSearcher) FindVideo(ctx context.Context, title, artist string) (string, error) {
	key := fmt.Sprintf("%s|%s", title, artist)
	m.Queries = append(m.Queries, key)

	if m.Err != nil {
		return "", m.Err
	}
	if id, ok := m.Results[key]; ok {
		return id, nil
	}
	return "", fmt.Errorf("%w: %s", shared.ErrNoResults, key)
}

func (m *MockSearcher) Name() string { return "mock-searcher" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}
