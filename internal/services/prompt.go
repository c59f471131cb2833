package services

import (
	"fmt"
	"strings"

	"github.com/playlisto/playlisto/internal/shared"
)

// BuildPrompt renders the recommendation prompt for one turn. The persona
// and song count targets come from configuration so prompt variants are a
// config change, not a second copy of the pipeline.
func BuildPrompt(cfg shared.PromptConfig, userInput string) string {
	var b strings.Builder

	b.WriteString(cfg.Persona)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "The user provided the following preferences: %q\n\n", userInput)
	b.WriteString("Follow these rules STRICTLY:\n\n")
	b.WriteString("1. Mandatory inclusion: if the user mentioned specific songs or artists, open the playlist with them. The rest of the playlist must complement those picks.\n")
	b.WriteString("2. Selection criteria: recommended songs MUST share clear sonic characteristics with the user's preferences. Focus on:\n")
	b.WriteString("   - Subgenre: stay strictly within the subgenre (e.g. for 'grunge', avoid 'arena hard rock').\n")
	b.WriteString("   - Instrumentation and timbre: look for similar guitar tones, drum patterns, or bass lines.\n")
	b.WriteString("   - Era: prefer songs from the same period or from movements directly influenced by it.\n")
	b.WriteString("   - Vibe and atmosphere: the energy and feeling of each song must be compatible.\n")
	b.WriteString("3. Avoid generic jumps: do not recommend overly obvious artists or entirely different genres unless the connection is strong and specific.\n")
	fmt.Fprintf(&b, "4. Output format: your response must contain ONLY the song list. For each song use the exact format \"Song Name | Artist Name\", one per line. Do not add numbering, bullets, titles, explanations, or any introductory text. The final playlist must contain %d to %d songs.\n", cfg.MinSongs, cfg.MaxSongs)

	return b.String()
}
