package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/playlisto/playlisto/internal/services"
	"github.com/playlisto/playlisto/internal/shared"
	"github.com/playlisto/playlisto/internal/tasks"
	"github.com/playlisto/playlisto/internal/ui"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for the CLI and provides the chat action.
type Runner struct {
	config *shared.Config
	gen    services.Generator
	search services.VideoSearcher
	logger *log.Logger
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
//
// Gen and Search are normally nil and built from config at startup; tests
// inject doubles through them.
type RunnerOpts struct {
	Config *shared.Config
	Gen    services.Generator
	Search services.VideoSearcher
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config: opts.Config,
		gen:    opts.Gen,
		search: opts.Search,
		logger: opts.Logger,
		output: opts.Output,
	}
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(logger *log.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// setup loads configuration and constructs the external service clients.
// Missing credentials abort startup before any interaction happens.
func (r *Runner) setup(ctx context.Context, configPath string) error {
	if r.config == nil {
		config, err := shared.LoadConfig(configPath)
		if err != nil {
			return err
		}
		r.config = config
	}

	if err := r.config.Validate(); err != nil {
		return err
	}

	if r.gen == nil {
		gen, err := services.NewGeminiService(ctx, r.config.Credentials.GeminiAPIKey, r.config.Prompt.Model)
		if err != nil {
			return err
		}
		r.gen = gen
	}

	if r.search == nil {
		search, err := services.NewYouTubeService(ctx, r.config.Credentials.YouTubeAPIKey, r.config.Search.QuerySuffix)
		if err != nil {
			return err
		}
		r.search = search
	}

	return nil
}

// InitConfig writes a starter configuration file at path for the user to
// fill in with credentials.
func (r *Runner) InitConfig(path string) error {
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("wrote configuration file", "path", path)
	fmt.Fprintf(r.output, "Created %s. Add your API keys, then run playlisto again.\n", path)
	return nil
}

// Chat launches the interactive chat TUI, the program's single surface.
func (r *Runner) Chat(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("init") {
		return r.InitConfig(cmd.String("config"))
	}

	if err := r.setup(ctx, cmd.String("config")); err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/playlisto.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	engine := tasks.NewPlaylistEngine(r.gen, r.search, r.config.Prompt, r.logger)

	model := ui.NewModel(ctx, engine)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	session := model.Session()
	r.logger.Info("session ended", "id", session.ID, "turns", session.Turns())

	// Leave the last playlist link behind for copy/paste after the
	// transcript is gone.
	if url := model.LastURL(); url != "" {
		fmt.Fprintf(r.output, "Last playlist: %s\n", url)
	}

	return nil
}
