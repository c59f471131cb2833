// package services wraps the two external HTTP APIs the application talks
// to: the Gemini generation model and YouTube video search.
package services

import (
	"context"
)

// Generator produces freeform recommendation text from a rendered prompt.
//
// Implemented by [GeminiService]; mocked in tests.
type Generator interface {
	// Recommend sends the prompt to the generation model and returns the
	// raw response text. Expected format is "Title | Artist" per line,
	// though callers must tolerate anything.
	Recommend(ctx context.Context, prompt string) (string, error)

	// Name returns the name of the service (e.g. "Gemini")
	Name() string
}

// VideoSearcher resolves a song to at most one playable video.
type VideoSearcher interface {
	// FindVideo searches for a video matching the given title and artist
	// and returns its id. Returns an error wrapping shared.ErrNoResults
	// when the search succeeds but yields nothing.
	FindVideo(ctx context.Context, title, artist string) (string, error)

	// Name returns the name of the service (e.g. "YouTube")
	Name() string
}
