package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/playlisto/playlisto/internal/models"
	"github.com/playlisto/playlisto/internal/shared"
	"github.com/playlisto/playlisto/internal/tasks"
)

// progressUpdateMsg carries one engine progress event into the Update loop.
type progressUpdateMsg tasks.ProgressUpdate

// turnCompleteMsg is sent when the engine finishes a turn.
type turnCompleteMsg struct {
	result *tasks.PlaylistRunResult
	err    error
}

// Model represents the chat TUI application state.
type Model struct {
	ctx     context.Context
	engine  *tasks.PlaylistEngine
	session *models.Session

	width  int
	height int

	input   textinput.Model
	spin    spinner.Model
	help    help.Model
	keys    keyMap

	lines  []string // rendered transcript, wrapped to width
	offset int      // index of first visible transcript line

	processing   bool
	progress     tasks.ProgressUpdate
	progressChan chan tasks.ProgressUpdate
	result       *tasks.PlaylistRunResult
	turnErr      error

	lastURL string
	status  notice
}

// notice is a transient status line shown under the input.
type notice struct {
	text  string
	level noticeLevel
}

type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeOK
	noticeErr
)

func (n notice) render() string {
	switch n.level {
	case noticeOK:
		return styles.ok.Render(n.text)
	case noticeErr:
		return styles.err.Render(n.text)
	default:
		return styles.warn.Render(n.text)
	}
}

// NewModel creates the chat model with a freshly seeded session.
func NewModel(ctx context.Context, engine *tasks.PlaylistEngine) *Model {
	input := textinput.New()
	input.Placeholder = "e.g. 90s alternative rock like Nirvana..."
	input.CharLimit = 500
	input.Focus()

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := &Model{
		ctx:     ctx,
		engine:  engine,
		session: models.NewSession(shared.GenerateID(), tasks.Greeting),
		input:   input,
		spin:    spin,
		help:    help.New(),
		keys:    newKeyMap(),
	}
	m.lines = m.renderTranscript()
	return m
}

// Session exposes the session backing this UI.
func (m *Model) Session() *models.Session {
	return m.session
}

// LastURL returns the most recently generated playlist link, if any.
func (m *Model) LastURL() string {
	return m.lastURL
}

// Init starts the cursor blink.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		m.lines = m.renderTranscript()
		m.scrollToBottom()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case spinner.TickMsg:
		if !m.processing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		return m, m.waitForProgress()

	case turnCompleteMsg:
		m.processing = false
		m.progress = tasks.ProgressUpdate{}
		m.progressChan = nil
		m.session.Append(models.RoleAssistant, tasks.Reply(msg.result, msg.err))
		if msg.result != nil && msg.result.URL != "" {
			m.lastURL = msg.result.URL
			m.status = notice{text: "ctrl+o opens the playlist in your browser", level: noticeOK}
		}
		if msg.err != nil {
			m.status = notice{text: "That turn was lost; check the log for details", level: noticeErr}
		}
		m.lines = m.renderTranscript()
		m.scrollToBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		return m, tea.Quit

	case "enter":
		if m.processing {
			return m, nil
		}
		input := strings.TrimSpace(m.input.Value())
		if input == "" {
			return m, nil
		}
		m.input.SetValue("")
		m.status = notice{}
		return m, m.startTurn(input)

	case "ctrl+o":
		if m.lastURL == "" {
			m.status = notice{text: "No playlist yet"}
			return m, nil
		}
		if err := shared.OpenBrowser(m.lastURL); err != nil {
			m.status = notice{text: fmt.Sprintf("Could not open browser: %v", err), level: noticeErr}
		} else {
			m.status = notice{text: "Opened playlist in browser", level: noticeOK}
		}
		return m, nil

	case "up":
		m.scrollUp(1)
		return m, nil
	case "down":
		m.scrollDown(1)
		return m, nil
	case "pgup":
		m.scrollUp(m.visibleRows())
		return m, nil
	case "pgdown":
		m.scrollDown(m.visibleRows())
		return m, nil
	}

	if m.processing {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startTurn appends the user message and runs the pipeline in the
// background, mirroring the progress channel pattern used for long
// operations elsewhere. The goroutine never touches the session: both
// transcript appends happen in Update, so a resize arriving mid-turn can
// re-render the transcript safely.
func (m *Model) startTurn(input string) tea.Cmd {
	m.processing = true
	m.result = nil
	m.turnErr = nil
	m.progressChan = make(chan tasks.ProgressUpdate, 50)

	m.session.Append(models.RoleUser, input)
	m.lines = m.renderTranscript()
	m.scrollToBottom()

	ch := m.progressChan
	go func() {
		result, err := m.engine.Run(m.ctx, input, ch)
		m.result = result
		m.turnErr = err
		close(ch)
	}()

	return tea.Batch(m.spin.Tick, m.waitForProgress())
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return turnCompleteMsg{result: m.result, err: m.turnErr}
		}

		update, ok := <-m.progressChan
		if !ok {
			return turnCompleteMsg{result: m.result, err: m.turnErr}
		}
		return progressUpdateMsg(update)
	}
}

// View renders the transcript, the status or input line, and help.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("playlisto — your terminal music sommelier"))
	b.WriteString("\n")

	visible := m.visibleRows()
	end := m.offset + visible
	if end > len(m.lines) {
		end = len(m.lines)
	}
	for _, line := range m.lines[m.offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}
	for i := end - m.offset; i < visible; i++ {
		b.WriteString("\n")
	}

	if m.processing {
		b.WriteString(m.renderProgress())
	} else {
		b.WriteString("> " + m.input.View())
	}
	b.WriteString("\n")

	if m.status.text != "" {
		b.WriteString(m.status.render())
		b.WriteString("\n")
	}

	b.WriteString(styles.help.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return b.String()
}

func (m *Model) renderProgress() string {
	status := m.progress.Message
	if status == "" {
		status = "Building your playlist..."
	}
	return fmt.Sprintf("%s %s", m.spin.View(), styles.dim.Render(status))
}

// renderTranscript renders session messages into wrapped display lines.
func (m *Model) renderTranscript() []string {
	maxWidth := m.width - 2
	if maxWidth < 40 {
		maxWidth = 40
	}

	var lines []string
	for _, msg := range m.session.Messages {
		switch msg.Role {
		case models.RoleUser:
			lines = append(lines, styles.user.Render("you"))
		case models.RoleAssistant:
			lines = append(lines, styles.assistant.Render("playlisto"))
		}

		for _, wrapped := range wrapText(msg.Content, maxWidth-2) {
			lines = append(lines, "  "+wrapped)
		}
		lines = append(lines, "")
	}

	return lines
}

// wrapText splits text into lines that fit within maxWidth.
func wrapText(text string, maxWidth int) []string {
	var result []string
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			result = append(result, "")
			continue
		}
		runes := []rune(line)
		for len(runes) > maxWidth {
			result = append(result, string(runes[:maxWidth]))
			runes = runes[maxWidth:]
		}
		result = append(result, string(runes))
	}
	return result
}

func (m *Model) visibleRows() int {
	rows := m.height - 5
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m *Model) scrollUp(n int) {
	m.offset -= n
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *Model) scrollDown(n int) {
	max := len(m.lines) - m.visibleRows()
	if max < 0 {
		max = 0
	}
	m.offset += n
	if m.offset > max {
		m.offset = max
	}
}

func (m *Model) scrollToBottom() {
	max := len(m.lines) - m.visibleRows()
	if max < 0 {
		max = 0
	}
	m.offset = max
}
