// Package iofs prepares the per-user directories of gndefrag, writes
// its default config and replaces output files atomically.
package iofs

import (
	_ "embed"
	"io"
	"os"

	"github.com/gnames/gndefrag/pkg/config"
)

// DefaultConfig is the commented config.yaml written on the first run.
//
//go:embed config.yaml
var DefaultConfig string

// EnsureDirs creates the config and log directories under homeDir.
func EnsureDirs(homeDir string) error {
	for _, dir := range config.AppDirs(homeDir) {
		if err := ensureDir(dir); err != nil {
			return err
		}
	}
	return nil
}

// ensureDir leaves permissions of an existing directory alone.
func ensureDir(dir string) error {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}
	return nil
}

// EnsureConfigFile writes DefaultConfig to config.yaml unless the user
// already has one. A user's file is never touched.
func EnsureConfigFile(homeDir string) error {
	path := config.ConfigFilePath(homeDir)
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	err := WriteAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, DefaultConfig)
		return err
	})
	if err != nil {
		return WriteConfigError(path, err)
	}
	return nil
}
