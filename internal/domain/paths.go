package domain

import (
	"os"
	"path/filepath"
)

// File names inside the data directory.
const (
	StoreFileName  = "tarefa.json"
	ConfigFileName = "config.toml"
	LogFileName    = "tarefa.log"

	appDirName = "tarefa"
)

// DefaultDataDir returns the tarefa data directory, honoring XDG_DATA_HOME.
func DefaultDataDir() string {
	if dir := os.Getenv("TAREFA_DATA_DIR"); dir != "" {
		return dir
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appDirName)
}

// DefaultConfigDir returns the tarefa config directory, honoring XDG_CONFIG_HOME.
func DefaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appDirName)
}

// StorePath returns the path to the store file inside dataDir.
func StorePath(dataDir string) string {
	return filepath.Join(dataDir, StoreFileName)
}

// LogPath returns the path to the log file inside dataDir.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, LogFileName)
}
