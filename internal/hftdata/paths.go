package hftdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hft-labs/hft/internal/branding"
	"github.com/hft-labs/hft/internal/config"
)

// Directory and file name constants under ~/.hft.
const (
	GamesDir     = "games"
	SettingsFile = "settings.yaml"
)

// GamesRoot returns the directory games are discovered under.
// It checks the HFT_GAMES environment variable, then the "games_root"
// config key, then falls back to ~/.hft/games.
func GamesRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("GAMES")); v != "" {
		return v, nil
	}
	if v := config.Get("games_root"); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir(), GamesDir), nil
}

// SettingsPath returns the location of the runtime settings file.
// It checks the HFT_SETTINGS environment variable, then the "settings_path"
// config key, then falls back to ~/.hft/settings.yaml.
func SettingsPath() (string, error) {
	if v := os.Getenv(branding.EnvVar("SETTINGS")); v != "" {
		return v, nil
	}
	if v := config.Get("settings_path"); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir(), SettingsFile), nil
}
