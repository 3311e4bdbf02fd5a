// Package where resolves the filesystem locations malq reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/malq-cli/malq/constant"
	"github.com/malq-cli/malq/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "MALQ_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory.
// XDG_CONFIG_HOME is honoured on Linux, the user profile equivalent elsewhere.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Malq))
}

// Cache resolves the cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Malq))
}

// Logs resolves the directory holding daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Token is the plaintext file holding the bearer token. Its absence means logged out.
func Token() string {
	return filepath.Join(Config(), "token")
}

// ClientID is the optional file holding the MyAnimeList client id.
func ClientID() string {
	return filepath.Join(Config(), "client_id")
}

// Queries resolves the search query history file.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}
