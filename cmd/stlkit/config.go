package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"stlkit/internal/driver"
)

const configFileName = "stlkit.toml"

type fileConfig struct {
	Output outputConfig `toml:"output"`
	Run    runConfig    `toml:"run"`
	Cache  cacheConfig  `toml:"cache"`
	Log    logConfig    `toml:"log"`
}

type outputConfig struct {
	Dialect     string `toml:"dialect"`
	Compression string `toml:"compression"`
	Level       int    `toml:"level"`
}

type runConfig struct {
	Jobs int    `toml:"jobs"`
	UI   string `toml:"ui"`
}

type cacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type logConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig parses and validates a config file. Unknown keys are rejected
// so that typos do not silently fall back to defaults.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fileConfig{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if _, err := driver.ParseDialect(cfg.Output.Dialect); err != nil {
		return fileConfig{}, fmt.Errorf("%s: [output].dialect: %w", path, err)
	}
	if _, err := driver.ParseCompression(cfg.Output.Compression); err != nil {
		return fileConfig{}, fmt.Errorf("%s: [output].compression: %w", path, err)
	}
	if cfg.Run.Jobs < 0 {
		return fileConfig{}, fmt.Errorf("%s: [run].jobs must be >= 0", path)
	}
	if _, err := readUIMode(cfg.Run.UI); err != nil {
		return fileConfig{}, fmt.Errorf("%s: [run].ui: %w", path, err)
	}
	if meta.IsDefined("cache", "dir") && strings.TrimSpace(cfg.Cache.Dir) == "" {
		return fileConfig{}, fmt.Errorf("%s: [cache].dir must not be empty", path)
	}
	if cfg.Log.Level != "" {
		if _, err := parseLogLevel(cfg.Log.Level); err != nil {
			return fileConfig{}, fmt.Errorf("%s: [log].level: %w", path, err)
		}
	}
	if cfg.Log.Format != "" {
		if err := checkLogFormat(cfg.Log.Format); err != nil {
			return fileConfig{}, fmt.Errorf("%s: [log].format: %w", path, err)
		}
	}
	// относительный каталог кэша считается от файла конфигурации
	if cfg.Cache.Dir != "" && !filepath.IsAbs(cfg.Cache.Dir) {
		cfg.Cache.Dir = filepath.Join(filepath.Dir(path), cfg.Cache.Dir)
	}
	return cfg, nil
}
