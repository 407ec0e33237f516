package config

import "path/filepath"

// AppName names the per-user directories of gndefrag.
const AppName = "gndefrag"

// ConfigDir keeps config.yaml, <home>/.config/gndefrag.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir keeps the log of the latest run,
// <home>/.local/share/gndefrag/logs.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath is config.yaml inside of ConfigDir.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// AppDirs lists directories that have to exist before a command runs.
func AppDirs(homeDir string) []string {
	return []string{ConfigDir(homeDir), LogDir(homeDir)}
}
