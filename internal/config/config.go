// Package config locates and parses the wrench configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings wrench reads at startup. The API base URL is
// the only required piece; the log path has a sensible default.
type Config struct {
	APIURL  string
	LogPath string
}

const (
	defaultConfigPath = "~/.config/wrench/config.toml"
	defaultLogPath    = "~/.local/state/wrench/wrench.log"
	defaultAPIURL     = "http://localhost:8000"

	// EnvAPIURL overrides the configured base URL when set.
	EnvAPIURL = "REX_API_BASE_URL"
)

// Load reads the config file at path (default ~/.config/wrench/config.toml),
// falling back to defaults when missing. REX_API_BASE_URL takes precedence
// over the file.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{APIURL: defaultAPIURL, LogPath: defaultLogPath}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg.finalize(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL  string `toml:"api_url"`
		LogPath string `toml:"log_path"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		cfg.LogPath = v
	}

	return cfg.finalize(), nil
}

func (c Config) finalize() Config {
	if env := strings.TrimSpace(os.Getenv(EnvAPIURL)); env != "" {
		c.APIURL = env
	}
	c.LogPath = mustExpand(c.LogPath)
	return c
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
