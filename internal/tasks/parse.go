package tasks

import (
	"regexp"
	"strings"

	"github.com/playlisto/playlisto/internal/models"
)

// candidateLine matches "Title | Artist". The lazy first group stops at the
// first pipe, so a stray pipe in the artist half stays with the artist.
var candidateLine = regexp.MustCompile(`^(.+?)\s*\|\s*(.+)$`)

// ParseCandidates extracts (title, artist) pairs from raw generation output,
// one candidate per matching line. Lines without a pipe separator are
// silently dropped; there is no cap on how many candidates a response may
// yield.
func ParseCandidates(text string) []models.SongCandidate {
	var candidates []models.SongCandidate

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		m := candidateLine.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}

		candidates = append(candidates, models.SongCandidate{
			Title:  strings.TrimSpace(m[1]),
			Artist: strings.TrimSpace(m[2]),
		})
	}

	return candidates
}
