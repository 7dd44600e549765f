package copilot

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	defaults "github.com/blackopsrepl/emacs-copilot/default"
)

// Config represents the user's copilot configuration.
type Config struct {
	Version int `toml:"version" json:"version"`
	// Model is the inference model name passed to the endpoint.
	Model string `toml:"model" json:"model"`
	// EndpointURL is the full URL of the generate endpoint.
	EndpointURL string `toml:"endpoint_url" json:"endpoint_url"`
	// ImportLineCount is how many leading document lines form the imports
	// slice of the context window.
	ImportLineCount int `toml:"import_line_count" json:"import_line_count"`
	// PrefixLineCount bounds the lines taken before the cursor.
	PrefixLineCount int `toml:"prefix_line_count" json:"prefix_line_count"`
	// SuffixLineCount bounds the lines taken after the cursor.
	SuffixLineCount int `toml:"suffix_line_count" json:"suffix_line_count"`
	// TimeoutSeconds bounds the inference round-trip. 0 means no timeout:
	// a hung endpoint blocks the invocation until the host gives up.
	TimeoutSeconds int `toml:"timeout_seconds" json:"timeout_seconds"`
}

// ConfigDir returns the config directory path.
// Resolution order: $EMACS_COPILOT_CONFIG_DIR > $XDG_CONFIG_HOME/emacs-copilot > ~/.config/emacs-copilot
func ConfigDir() string {
	if dir := os.Getenv("EMACS_COPILOT_CONFIG_DIR"); dir != "" {
		return dir
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "emacs-copilot")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("/tmp", "emacs-copilot-config")
	}
	return filepath.Join(home, ".config", "emacs-copilot")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultConfig returns the default configuration from the embedded
// default_config.toml.
func DefaultConfig() *Config {
	var cfg Config
	if err := toml.Unmarshal(defaults.DefaultConfigTOML, &cfg); err != nil {
		panic("copilot: invalid embedded default_config.toml: " + err.Error())
	}
	return &cfg
}

// LoadConfig loads config from disk or returns defaults if not found.
func LoadConfig() (*Config, error) {
	path := ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if cfg.Model == "" {
		cfg.Model = defaults.Model
	}
	if cfg.EndpointURL == "" {
		cfg.EndpointURL = defaults.EndpointURL
	}
	if cfg.ImportLineCount <= 0 {
		cfg.ImportLineCount = defaults.ImportLineCount
	}
	if cfg.PrefixLineCount <= 0 {
		cfg.PrefixLineCount = defaults.PrefixLineCount
	}
	if cfg.SuffixLineCount <= 0 {
		cfg.SuffixLineCount = defaults.SuffixLineCount
	}
	if cfg.TimeoutSeconds < 0 {
		cfg.TimeoutSeconds = defaults.TimeoutSeconds
	}

	return &cfg, nil
}

// ResolveModel returns the inference model name.
// Priority: $EMACS_COPILOT_MODEL env > config value.
func ResolveModel(cfg *Config) string {
	if model := os.Getenv("EMACS_COPILOT_MODEL"); model != "" {
		return model
	}
	if cfg != nil {
		return cfg.Model
	}
	return ""
}

// ResolveEndpointURL returns the generate endpoint URL.
// Priority: $EMACS_COPILOT_ENDPOINT_URL env > config value.
func ResolveEndpointURL(cfg *Config) string {
	if url := os.Getenv("EMACS_COPILOT_ENDPOINT_URL"); url != "" {
		return url
	}
	if cfg != nil {
		return cfg.EndpointURL
	}
	return ""
}

// ResolveTimeoutSeconds returns the inference timeout in seconds.
// Priority: $EMACS_COPILOT_TIMEOUT_SECONDS env > config value.
func ResolveTimeoutSeconds(cfg *Config) int {
	if s := os.Getenv("EMACS_COPILOT_TIMEOUT_SECONDS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			return n
		}
	}
	if cfg != nil {
		return cfg.TimeoutSeconds
	}
	return 0
}
