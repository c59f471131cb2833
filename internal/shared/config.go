package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration. Values are layered:
// embedded defaults, then an optional TOML file, then environment variables.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Prompt      PromptConfig      `toml:"prompt"`
	Search      SearchConfig      `toml:"search"`
}

// CredentialsConfig contains the API keys for the two external services.
//
// Both keys are required; [Config.Validate] rejects a configuration where
// either is empty.
type CredentialsConfig struct {
	GeminiAPIKey  string `toml:"gemini_api_key" env:"GEMINI_API_KEY"`
	YouTubeAPIKey string `toml:"youtube_api_key" env:"YOUTUBE_API_KEY"`
}

// PromptConfig parameterizes the recommendation prompt sent to the
// generation model, so prompt wording and song count targets are
// configuration rather than duplicated pipeline code.
type PromptConfig struct {
	Model    string `toml:"model" env:"PLAYLISTO_MODEL"`
	Persona  string `toml:"persona" env:"PLAYLISTO_PERSONA"`
	MinSongs int    `toml:"min_songs" env:"PLAYLISTO_MIN_SONGS"`
	MaxSongs int    `toml:"max_songs" env:"PLAYLISTO_MAX_SONGS"`
}

// SearchConfig contains video search settings.
type SearchConfig struct {
	// QuerySuffix is appended to "<title> <artist>" when searching,
	// steering results toward playable uploads.
	QuerySuffix string `toml:"query_suffix" env:"PLAYLISTO_QUERY_SUFFIX"`
}

// LoadConfig builds the effective configuration: embedded defaults, merged
// with the TOML file at path (if it exists), then environment overrides.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := toml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidConfig, path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: failed to read %s: %v", ErrInvalidConfig, path, err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse environment: %v", ErrInvalidConfig, err)
	}

	return config, nil
}

// DefaultConfig returns a Config with defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// Validate checks that both API keys are present, naming every missing key.
func (c *Config) Validate() error {
	var missing []string
	if c.Credentials.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if c.Credentials.YouTubeAPIKey == "" {
		missing = append(missing, "YOUTUBE_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}
	if c.Prompt.MinSongs <= 0 || c.Prompt.MaxSongs < c.Prompt.MinSongs {
		return fmt.Errorf("%w: prompt song count range %d-%d", ErrInvalidConfig, c.Prompt.MinSongs, c.Prompt.MaxSongs)
	}
	return nil
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
