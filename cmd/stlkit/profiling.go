package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stlkit/internal/prof"
)

// activeProfile живёт от PersistentPreRunE до выхода из main.
var activeProfile *prof.Session

func startProfiling(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()
	var cfg prof.Config
	var err error
	if cfg.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if cfg.Mem, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if cfg.Trace, err = flags.GetString("trace-out"); err != nil {
		return fmt.Errorf("failed to get trace-out flag: %w", err)
	}
	if !cfg.Enabled() {
		return nil
	}
	activeProfile, err = prof.Start(cfg)
	return err
}

func stopProfiling() error {
	err := activeProfile.Stop()
	activeProfile = nil
	return err
}
