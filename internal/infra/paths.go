package infra

import (
	"os"
	"path/filepath"
)

const (
	AppName = "crypto-dash"
)

// ResolveConfigPath attempts to find the config.yaml.
// Priority: 1. explicit path, 2. Current Dir, 3. OS Config Dir
func ResolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	defaultPath := filepath.Join("configs", "config.yaml")

	// 1. Current working directory (standard)
	if _, err := os.Stat(defaultPath); err == nil {
		return defaultPath
	}

	// 2. OS Standard Config Dir
	configRoot, err := os.UserConfigDir()
	if err == nil {
		osPath := filepath.Join(configRoot, AppName, "config.yaml")
		if _, err := os.Stat(osPath); err == nil {
			return osPath
		}
	}

	// LoadConfig treats a missing file as "use defaults"
	return defaultPath
}
