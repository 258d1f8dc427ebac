// Package config handles skein configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/skeinchat/skein/pkg/ansi"
	"github.com/skeinchat/skein/pkg/escapes"
	"github.com/skeinchat/skein/pkg/protocol"
)

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Join    JoinConfig    `yaml:"join"`
	UI      UIConfig      `yaml:"ui"`
	Escapes []EscapeRule  `yaml:"escapes"`
	Session SessionConfig `yaml:"session"`
}

// ServerConfig holds connection settings.
type ServerConfig struct {
	URL string `yaml:"url"`
	// ReconnectWaitMS is the delay before redialing a dropped connection.
	ReconnectWaitMS int `yaml:"reconnect_wait_ms"`
}

// JoinConfig holds the identity used when joining a channel.
type JoinConfig struct {
	Nick     string `yaml:"nick"`
	Channel  string `yaml:"channel"`
	Password string `yaml:"password"`
}

// UIConfig holds terminal appearance settings. Colors are hex strings like
// "#333333".
type UIConfig struct {
	TripColor   string `yaml:"trip_color"`
	NickColor   string `yaml:"nick_color"`
	ServerColor string `yaml:"server_color"`
	WarnColor   string `yaml:"warn_color"`
}

// EscapeRule is one substitution applied to incoming text before display.
type EscapeRule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// SessionConfig holds history and transcript settings.
type SessionConfig struct {
	HistoryFile    string `yaml:"history_file"`
	TranscriptFile string `yaml:"transcript_file"`
	LogFile        string `yaml:"log_file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:             "wss://hack.chat/chat-ws",
			ReconnectWaitMS: 500,
		},
		Join: JoinConfig{
			Channel: "programming",
		},
		UI: UIConfig{
			TripColor: "#333333",
		},
		Session: SessionConfig{
			HistoryFile: defaultStatePath("history"),
		},
	}
}

// Validate checks the fields that would otherwise fail deep inside the
// client, so mistakes surface before dialing.
func (c *Config) Validate() error {
	if c.Server.URL == "" {
		return fmt.Errorf("config: server.url is required")
	}
	if c.Join.Nick != "" {
		if err := protocol.ValidateNick(c.Join.Nick); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if c.Join.Channel != "" {
		if err := protocol.ValidateChannel(c.Join.Channel); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	for _, field := range []struct{ name, value string }{
		{"ui.trip_color", c.UI.TripColor},
		{"ui.nick_color", c.UI.NickColor},
		{"ui.server_color", c.UI.ServerColor},
		{"ui.warn_color", c.UI.WarnColor},
	} {
		if field.value == "" {
			continue
		}
		if _, err := ansi.ParseColor(field.value); err != nil {
			return fmt.Errorf("config: %s: %w", field.name, err)
		}
	}
	return nil
}

// EscapeTable builds the substitution table: the stock rules, then any
// configured extras in order.
func (c *Config) EscapeTable() *escapes.Table {
	table := escapes.Default()
	for _, rule := range c.Escapes {
		table.Add(rule.From, rule.To)
	}
	return table
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads config from path, or returns default if not found.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	return Load(path)
}

// Save saves configuration to a file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfigPath returns the default config file path: a skein.yaml in
// the working directory wins, then the user config directory.
func DefaultConfigPath() string {
	if _, err := os.Stat("skein.yaml"); err == nil {
		return "skein.yaml"
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "skein", "config.yaml")
	}
	return "skein.yaml"
}

// InitConfig creates a default config file if it doesn't exist.
func InitConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // Already exists
	}

	cfg := Default()
	return cfg.Save(path)
}

// defaultStatePath places a state file under the user config directory,
// falling back to a dotfile in the working directory.
func defaultStatePath(name string) string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "skein", name)
	}
	return ".skein_" + name
}
