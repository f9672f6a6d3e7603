// Package config loads atril's configuration from ~/.config/atril/config.toml,
// falling back to defaults when the file is missing.
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

// Config captures the fields atril needs to reach the backend and persist
// its local snapshot cache.
type Config struct {
	APIBase      string
	APIToken     string
	CachePath    string
	PageSize     int
	RefreshEvery int // seconds; zero disables background refresh
}

const (
	defaultConfigPath = "~/.config/atril/config.toml"
	defaultCachePath  = "~/.local/share/atril/snapshots.db"
	defaultAPIBase    = "127.0.0.1:4000"
	defaultPageSize   = 8
)

// Load locates and parses the config file, falling back to defaults when it
// does not exist.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIBase:   defaultAPIBase,
		CachePath: defaultCachePath,
		PageSize:  defaultPageSize,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.CachePath = mustExpand(cfg.CachePath)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase      string `toml:"api_base"`
		APIToken     string `toml:"api_token"`
		CachePath    string `toml:"cache_path"`
		PageSize     int    `toml:"page_size"`
		RefreshEvery int    `toml:"refresh_every"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimSpace(raw.APIBase); base != "" {
		cfg.APIBase = base
	}
	cfg.APIToken = strings.TrimSpace(raw.APIToken)
	if path := strings.TrimSpace(raw.CachePath); path != "" {
		cfg.CachePath = path
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.RefreshEvery > 0 {
		cfg.RefreshEvery = raw.RefreshEvery
	}
	cfg.CachePath = mustExpand(cfg.CachePath)

	return cfg, nil
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
