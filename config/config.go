// Copyright (c) 2026 The CastShare developers
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package config holds the runtime configuration for hosts embedding
// the castshare ledger.
package config

import (
	"os"
	"path/filepath"
)

// Config is the runtime configuration for an embedding host.
type Config struct {
	// DataDir is the directory holding the ledger database.
	DataDir string

	// LogLevel is the minimum level the host should log at:
	// debug, info, warn, or error.
	LogLevel string

	// LogFile is the log destination; empty means stderr.
	LogFile string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DataDir:  defaultDataDir(),
		LogLevel: "info",
		LogFile:  "",
	}
}

// defaultDataDir returns ~/.castshare, falling back to the current
// directory when the home directory cannot be resolved.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".castshare"
	}
	return filepath.Join(home, ".castshare")
}

// DatabasePath returns the ledger database file path under DataDir.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "ledger.db")
}
