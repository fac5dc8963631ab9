// Package where resolves the filesystem locations streamfront reads from and writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/streamfront/streamfront/constant"
	"github.com/streamfront/streamfront/filesystem"
)

// EnvConfigPath overrides the configuration directory when set.
const EnvConfigPath = "STREAMFRONT_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory, honoring STREAMFRONT_CONFIG_PATH.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok && custom != "" {
		return mkdir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return mkdir(filepath.Join(base, constant.Streamfront))
}

// Cache returns the cache directory. Falls back to ./cache when the platform has none.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return mkdir(filepath.Join(base, constant.Streamfront))
}

// Logs returns the directory holding daily log files.
func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// History returns the path of the opened-sources record.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Temp returns a scratch directory. It is wiped on every start-up, so nothing a running
// session depends on may live here.
func Temp() string {
	return mkdir(filepath.Join(os.TempDir(), constant.Streamfront))
}
