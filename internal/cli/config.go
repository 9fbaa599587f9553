package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	envHost   = "CB_HOST"
	envAPIURL = "CB_API_URL"

	defaultHost = "localhost"
)

// CLIConfig holds CLI configuration persisted to disk.
type CLIConfig struct {
	Host   string `yaml:"host,omitempty"`
	APIURL string `yaml:"api_url,omitempty"`
}

// configPath returns the path to the CLI config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "cb", "config.yaml"), nil
}

// loadEnvFile loads CB_* variables from a .env file in the working directory.
// Variables already set in the environment win. A missing file is not an error.
func loadEnvFile() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// loadConfig reads the CLI config from disk.
// Returns a zero-value config if the file doesn't exist.
func loadConfig() (CLIConfig, error) {
	path, err := configPath()
	if err != nil {
		return CLIConfig{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return CLIConfig{}, nil
	}
	if err != nil {
		return CLIConfig{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// saveConfig writes the CLI config to disk.
func saveConfig(cfg CLIConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// getHost returns the board host from flag, env var, config, or default.
func getHost() string {
	if flagHost != "" {
		return flagHost
	}
	if v := os.Getenv(envHost); v != "" {
		return v
	}
	cfg, err := loadConfig()
	if err == nil && cfg.Host != "" {
		return cfg.Host
	}
	return defaultHost
}

// getAPIURL returns the API URL override from flag, env var, or config.
// Empty means the URL is resolved from the host.
func getAPIURL() string {
	if flagAPIURL != "" {
		return flagAPIURL
	}
	if v := os.Getenv(envAPIURL); v != "" {
		return v
	}
	cfg, err := loadConfig()
	if err == nil {
		return cfg.APIURL
	}
	return ""
}
