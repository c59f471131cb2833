package tasks

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/playlisto/playlisto/internal/models"
	"github.com/playlisto/playlisto/internal/services"
	"github.com/playlisto/playlisto/internal/shared"
)

const (
	// watchVideosBase is the anonymous-playlist URL prefix; ids are joined
	// with commas in candidate order.
	watchVideosBase = "https://www.youtube.com/watch_videos?video_ids="

	// Greeting seeds every new session as the first assistant message.
	Greeting = "Hi! Tell me the bands, songs, or style you're into and I'll build you a YouTube playlist."

	// Apology is the fixed reply when zero candidates resolve, whatever the
	// underlying cause.
	Apology = "Sorry, I couldn't find videos for the recommended songs. Try being more specific."

	// generationFailedReply is shown when the generation call itself fails.
	// The turn is lost but the session keeps going.
	generationFailedReply = "Sorry, I couldn't come up with recommendations just now. Please try again."
)

// PlaylistRunResult contains all data from one pipeline run.
type PlaylistRunResult struct {
	Candidates  []models.SongCandidate // Parsed (title, artist) pairs
	Resolutions []models.Resolution    // One entry per candidate, in order
	VideoIDs    []string               // Matched ids, candidate order, no dedup
	URL         string                 // Combined playlist URL, empty when no matches
	Reply       string                 // Assistant-visible message for this run
}

// MatchedCount returns how many candidates resolved to a video.
func (r *PlaylistRunResult) MatchedCount() int {
	return len(r.VideoIDs)
}

// PlaylistEngine drives the generate → parse → resolve → assemble pipeline.
type PlaylistEngine struct {
	gen    services.Generator
	search services.VideoSearcher
	prompt shared.PromptConfig
	logger *log.Logger
}

// NewPlaylistEngine creates a PlaylistEngine with the provided services.
func NewPlaylistEngine(gen services.Generator, search services.VideoSearcher, prompt shared.PromptConfig, logger *log.Logger) *PlaylistEngine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &PlaylistEngine{
		gen:    gen,
		search: search,
		prompt: prompt,
		logger: logger,
	}
}

// SetLogger swaps the engine's logger, e.g. for file logging under the TUI.
func (e *PlaylistEngine) SetLogger(logger *log.Logger) {
	if logger != nil {
		e.logger = logger
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *PlaylistEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Run executes one full pipeline pass for the given taste description.
//
// Candidates are resolved strictly sequentially; a search miss or error for
// one candidate is recorded and skipped, never surfaced. A generation
// failure aborts the run with an error wrapping [shared.ErrGenerationFailed].
func (e *PlaylistEngine) Run(ctx context.Context, input string, progress chan<- ProgressUpdate) (*PlaylistRunResult, error) {
	if e.gen == nil {
		return nil, fmt.Errorf("%w: generator not initialized", shared.ErrServiceUnavailable)
	}
	if e.search == nil {
		return nil, fmt.Errorf("%w: video search not initialized", shared.ErrServiceUnavailable)
	}
	if strings.TrimSpace(input) == "" {
		return nil, fmt.Errorf("%w: empty taste description", shared.ErrInvalidInput)
	}

	e.sendProgress(progress, generatingUpdate())

	raw, err := e.gen.Recommend(ctx, services.BuildPrompt(e.prompt, input))
	if err != nil {
		e.logger.Error("recommendation generation failed", "err", err)
		return nil, err
	}

	result := &PlaylistRunResult{Candidates: ParseCandidates(raw)}
	total := len(result.Candidates)

	e.logger.Debug("parsed recommendations", "candidates", total)
	e.sendProgress(progress, parsedUpdate(total))

	result.Resolutions = make([]models.Resolution, total)
	for i, candidate := range result.Candidates {
		e.sendProgress(progress, searchUpdate(i+1, total, candidate))

		videoID, err := e.search.FindVideo(ctx, candidate.Title, candidate.Artist)
		result.Resolutions[i] = models.Resolution{
			Candidate: candidate,
			VideoID:   videoID,
			Err:       err,
		}

		if err != nil {
			// Swallowed from the user's perspective, but kept loggable.
			e.logger.Warn("failed to resolve candidate",
				"title", candidate.Title,
				"artist", candidate.Artist,
				"err", err)
			continue
		}

		result.VideoIDs = append(result.VideoIDs, videoID)
	}

	e.sendProgress(progress, assembledUpdate(len(result.VideoIDs), total))

	if len(result.VideoIDs) == 0 {
		result.Reply = Apology
		return result, nil
	}

	result.URL = BuildPlaylistURL(result.VideoIDs)
	result.Reply = fmt.Sprintf("Playlist ready! 🎧\n\nListen on YouTube: %s", result.URL)

	return result, nil
}

// Turn runs one conversation turn against the session: append the user
// message, run the pipeline, append the assistant reply. Exactly two
// messages are appended regardless of outcome, so the transcript always
// holds 1 + 2N entries after N turns.
func (e *PlaylistEngine) Turn(ctx context.Context, sess *models.Session, input string, progress chan<- ProgressUpdate) (*PlaylistRunResult, error) {
	sess.Append(models.RoleUser, input)

	result, err := e.Run(ctx, input, progress)
	sess.Append(models.RoleAssistant, Reply(result, err))
	return result, err
}

// Reply returns the assistant-visible message for a finished run: the run's
// own reply, or the fixed failure notice when the run errored. Callers that
// append transcript messages themselves (the TUI) use this to stay
// consistent with [PlaylistEngine.Turn].
func Reply(result *PlaylistRunResult, err error) string {
	if err != nil || result == nil {
		return generationFailedReply
	}
	return result.Reply
}

// BuildPlaylistURL joins video ids into an anonymous YouTube playlist link.
// Order is preserved and duplicates are kept.
func BuildPlaylistURL(videoIDs []string) string {
	return watchVideosBase + strings.Join(videoIDs, ",")
}
