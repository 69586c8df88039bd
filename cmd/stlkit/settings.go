package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"stlkit/internal/driver"
)

// settings is the merged view of flags and stlkit.toml. Flags the user set
// explicitly win over the config file.
type settings struct {
	configPath string
	cfg        fileConfig
	color      string
	quiet      bool
	timings    bool
	jobs       int
	ui         uiMode
	logger     *slog.Logger
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Root().PersistentFlags()
	s := &settings{}

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath == "" {
		found, ok, err := findConfig(".")
		if err != nil {
			return nil, err
		}
		if ok {
			configPath = found
		}
	}
	if configPath != "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return nil, err
		}
		s.cfg = cfg
		s.configPath = configPath
	}

	if s.color, err = flags.GetString("color"); err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch s.color {
	case "auto", "on", "off":
	default:
		return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", s.color)
	}
	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}

	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}

	s.jobs = s.cfg.Run.Jobs
	if flags.Changed("jobs") {
		if s.jobs, err = flags.GetInt("jobs"); err != nil {
			return nil, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}

	uiValue := s.cfg.Run.UI
	if flags.Changed("ui") || uiValue == "" {
		if uiValue, err = flags.GetString("ui"); err != nil {
			return nil, fmt.Errorf("failed to get ui flag: %w", err)
		}
	}
	if s.ui, err = readUIMode(uiValue); err != nil {
		return nil, err
	}

	levelValue := stringSetting(cmd, "log-level", s.cfg.Log.Level)
	level, err := parseLogLevel(levelValue)
	if err != nil {
		return nil, err
	}
	format := stringSetting(cmd, "log-format", s.cfg.Log.Format)
	if s.logger, err = newLogger(cmd.ErrOrStderr(), level, format, s.quiet); err != nil {
		return nil, err
	}
	if s.configPath != "" {
		s.logger.Debug("config loaded", "path", s.configPath)
	}
	return s, nil
}

// stringSetting returns the flag value when it was set explicitly, the
// config value when present, and the flag default otherwise.
func stringSetting(cmd *cobra.Command, name, fromConfig string) string {
	flags := cmd.Root().PersistentFlags()
	value, _ := flags.GetString(name)
	if !flags.Changed(name) && strings.TrimSpace(fromConfig) != "" {
		return fromConfig
	}
	return value
}

// useColor resolves --color for the given output stream.
func (s *settings) useColor(w io.Writer) bool {
	switch s.color {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminalWriter(w)
	}
}

// openCache returns the summary cache when [cache].enabled is set.
func (s *settings) openCache() (*driver.DiskCache, error) {
	if !s.cfg.Cache.Enabled {
		return nil, nil
	}
	if s.cfg.Cache.Dir != "" {
		return driver.NewDiskCache(s.cfg.Cache.Dir)
	}
	return driver.OpenDiskCache("stlkit")
}

func (s *settings) printf(w io.Writer, format string, args ...any) {
	if s.quiet {
		return
	}
	fmt.Fprintf(w, format, args...)
}
