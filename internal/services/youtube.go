package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/playlisto/playlisto/internal/shared"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTubeService implements [VideoSearcher] using the YouTube Data API v3
// search endpoint, authenticated with an API key.
type YouTubeService struct {
	svc         *youtube.Service
	querySuffix string
}

// NewYouTubeService creates a YouTube search client. Extra options are
// appended after the API key, letting tests point the client at a local
// server via [option.WithEndpoint].
func NewYouTubeService(ctx context.Context, apiKey, querySuffix string, opts ...option.ClientOption) (*YouTubeService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: youtube API key is empty", shared.ErrMissingCredentials)
	}

	svc, err := youtube.NewService(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube client: %w", err)
	}

	return &YouTubeService{svc: svc, querySuffix: querySuffix}, nil
}

// Name returns the service name.
func (y *YouTubeService) Name() string {
	return "YouTube"
}

// Query composes the search query for a candidate: "<title> <artist>" plus
// the configured suffix.
func (y *YouTubeService) Query(title, artist string) string {
	parts := []string{title, artist}
	if y.querySuffix != "" {
		parts = append(parts, y.querySuffix)
	}
	return strings.Join(parts, " ")
}

// FindVideo searches for a single video matching the title and artist and
// returns its id. A search that succeeds with zero items returns an error
// wrapping [shared.ErrNoResults].
func (y *YouTubeService) FindVideo(ctx context.Context, title, artist string) (string, error) {
	query := y.Query(title, artist)

	res, err := y.svc.Search.List([]string{"snippet"}).
		Q(query).
		MaxResults(1).
		Type("video").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("%w: search %q: %v", shared.ErrAPIRequest, query, err)
	}

	if len(res.Items) == 0 || res.Items[0].Id == nil || res.Items[0].Id.VideoId == "" {
		return "", fmt.Errorf("%w: %q", shared.ErrNoResults, query)
	}

	return res.Items[0].Id.VideoId, nil
}
