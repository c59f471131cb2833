package tasks

import (
	"fmt"

	"github.com/playlisto/playlisto/internal/models"
)

// ProgressUpdate represents a progress event during a playlist run.
//
// Used to send real-time updates to the UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	Generate Phase = iota
	Parse
	SearchVideos
	Assemble
)

func (p Phase) String() string {
	switch p {
	case Generate:
		return "generate"
	case Parse:
		return "parse"
	case SearchVideos:
		return "search_videos"
	case Assemble:
		return "assemble"
	default:
		return ""
	}
}

func generatingUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   Generate,
		Step:    1,
		Total:   1,
		Message: "Asking the sommelier for recommendations...",
	}
}

func parsedUpdate(count int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Parse,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Got %d song recommendations", count),
	}
}

func searchUpdate(step, total int, c models.SongCandidate) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SearchVideos,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Searching for '%s' by '%s'...", step, total, c.Title, c.Artist),
		Data:    c,
	}
}

func assembledUpdate(matched, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Assemble,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Playlist assembled (%d/%d songs matched)", matched, total),
	}
}
