package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/playlisto/playlisto/internal/models"
	"github.com/playlisto/playlisto/internal/shared"
	"github.com/playlisto/playlisto/internal/tasks"
	tu "github.com/playlisto/playlisto/internal/testing"
)

// gatedSearcher blocks FindVideo until released, letting tests hold a turn
// in flight.
type gatedSearcher struct {
	release chan struct{}
}

func (g *gatedSearcher) FindVideo(ctx context.Context, title, artist string) (string, error) {
	<-g.release
	return "abc123", nil
}

func (g *gatedSearcher) Name() string { return "gated" }

func newTestModel(gen *tu.MockGenerator, search *gatedSearcher) *Model {
	prompt := shared.PromptConfig{Persona: "You are a music sommelier.", MinSongs: 8, MaxSongs: 10}
	engine := tasks.NewPlaylistEngine(gen, search, prompt, shared.NewLogger(&tu.FWriter{}))
	return NewModel(context.Background(), engine)
}

// pump drives the progress loop the way bubbletea would until the turn
// completes.
func pump(t *testing.T, m *Model) turnCompleteMsg {
	t.Helper()
	for i := 0; i < 100; i++ {
		msg := m.waitForProgress()()
		if complete, ok := msg.(turnCompleteMsg); ok {
			return complete
		}
		m.Update(msg)
	}
	t.Fatal("turn never completed")
	return turnCompleteMsg{}
}

func TestModelTurn(t *testing.T) {
	gen := &tu.MockGenerator{Response: "Alive | Pearl Jam"}
	search := &gatedSearcher{release: make(chan struct{})}
	m := newTestModel(gen, search)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	cmd := m.startTurn("90s grunge")
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if !m.processing {
		t.Error("expected the model to be processing")
	}

	t.Run("user message lands before the engine runs", func(t *testing.T) {
		if len(m.session.Messages) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(m.session.Messages))
		}
		if m.session.Messages[1].Role != models.RoleUser || m.session.Messages[1].Content != "90s grunge" {
			t.Errorf("unexpected user message: %+v", m.session.Messages[1])
		}
	})

	t.Run("resizing mid-turn re-renders from a stable transcript", func(t *testing.T) {
		// The engine goroutine is blocked inside the search; these
		// re-renders read the session the goroutine must not touch.
		for i := 0; i < 50; i++ {
			m.Update(tea.WindowSizeMsg{Width: 60 + i, Height: 20})
		}
		if len(m.session.Messages) != 2 {
			t.Errorf("transcript changed while the turn was in flight: %d messages", len(m.session.Messages))
		}
	})

	close(search.release)
	complete := pump(t, m)
	m.Update(complete)

	t.Run("completion appends the assistant reply", func(t *testing.T) {
		if m.processing {
			t.Error("expected processing to be finished")
		}
		if len(m.session.Messages) != 3 {
			t.Fatalf("expected 3 messages, got %d", len(m.session.Messages))
		}

		last := m.session.Messages[2]
		if last.Role != models.RoleAssistant {
			t.Errorf("expected assistant reply, got role %s", last.Role)
		}
		if !strings.Contains(last.Content, "https://www.youtube.com/watch_videos?video_ids=abc123") {
			t.Errorf("expected reply to carry the playlist URL, got %q", last.Content)
		}
		if m.LastURL() != "https://www.youtube.com/watch_videos?video_ids=abc123" {
			t.Errorf("unexpected last URL: %q", m.LastURL())
		}
		if m.status.level != noticeOK {
			t.Errorf("expected an ok status notice, got level %d", m.status.level)
		}
	})
}

func TestModelTurnFailure(t *testing.T) {
	gen := &tu.MockGenerator{Err: shared.ErrGenerationFailed}
	search := &gatedSearcher{release: make(chan struct{})}
	close(search.release)
	m := newTestModel(gen, search)

	m.startTurn("anything")
	complete := pump(t, m)
	m.Update(complete)

	// The turn is lost, the session is not: user message plus notice.
	if len(m.session.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(m.session.Messages))
	}
	if m.session.Messages[2].Role != models.RoleAssistant {
		t.Error("expected an assistant failure notice")
	}
	if m.status.level != noticeErr {
		t.Errorf("expected an error status notice, got level %d", m.status.level)
	}
	if m.LastURL() != "" {
		t.Errorf("expected no playlist URL, got %q", m.LastURL())
	}
}

func TestNoticeRender(t *testing.T) {
	for _, tt := range []struct {
		name string
		n    notice
	}{
		{"info", notice{text: "plain", level: noticeInfo}},
		{"ok", notice{text: "ready", level: noticeOK}},
		{"err", notice{text: "lost", level: noticeErr}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.n.render(), tt.n.text) {
				t.Errorf("expected rendered notice to contain %q", tt.n.text)
			}
		})
	}
}
