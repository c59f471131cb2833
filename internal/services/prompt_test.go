package services

import (
	"strings"
	"testing"

	"github.com/playlisto/playlisto/internal/shared"
)

func TestBuildPrompt(t *testing.T) {
	cfg := shared.PromptConfig{
		Persona:  "You are a music sommelier.",
		MinSongs: 8,
		MaxSongs: 10,
	}

	prompt := BuildPrompt(cfg, `black metal with "atmospheric" leanings`)

	t.Run("opens with the configured persona", func(t *testing.T) {
		if !strings.HasPrefix(prompt, cfg.Persona) {
			t.Errorf("expected prompt to start with the persona, got %q", prompt[:40])
		}
	})

	t.Run("quotes the user input verbatim", func(t *testing.T) {
		if !strings.Contains(prompt, `black metal with \"atmospheric\" leanings`) {
			t.Error("expected prompt to embed the quoted user input")
		}
	})

	t.Run("states the output contract", func(t *testing.T) {
		if !strings.Contains(prompt, `"Song Name | Artist Name"`) {
			t.Error("expected prompt to state the line format")
		}
		if !strings.Contains(prompt, "8 to 10 songs") {
			t.Error("expected prompt to state the configured song count range")
		}
	})
}
