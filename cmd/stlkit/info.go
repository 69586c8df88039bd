package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stlkit/internal/driver"
	"stlkit/internal/ui"
)

type infoJSON struct {
	Path      string      `json:"path"`
	Dialect   string      `json:"dialect"`
	Header    string      `json:"header"`
	Triangles int         `json:"triangles"`
	Bounds    *boundsJSON `json:"bounds,omitempty"`
	Cached    bool        `json:"cached,omitempty"`
	Error     string      `json:"error,omitempty"`
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [flags] file.stl...",
		Short: "Summarize STL files",
		Long:  `Info decodes every file and prints its dialect, header, triangle count and dimensions`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runInfo,
	}
	cmd.Flags().String("format", "table", "output format (table|json)")
	cmd.Flags().Bool("no-cache", false, "bypass the summary cache")
	cmd.Flags().Bool("clear-cache", false, "drop every cached summary before running")
	return cmd
}

func runInfo(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if err := checkFormat(format, "table", "json"); err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}

	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}

	opts := driver.Options{}
	if !noCache || clearCache {
		cache, err := s.openCache()
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		if clearCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			s.logger.Info("cache cleared", "dir", cache.Dir())
		}
		if !noCache {
			opts.Cache = cache
		}
	}

	sums, err := s.inspect(cmd.Context(), "inspecting", args, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := false
	for _, sum := range sums {
		if sum.Err != nil {
			failed = true
		}
	}

	switch format {
	case "json":
		items := make([]infoJSON, 0, len(sums))
		for _, sum := range sums {
			item := infoJSON{
				Path:      sum.Path,
				Dialect:   sum.Dialect.String(),
				Header:    sum.Header,
				Triangles: sum.Triangles,
				Bounds:    makeBoundsJSON(sum.Bounds, sum.HasBounds),
				Cached:    sum.Cached,
			}
			if sum.Err != nil {
				item.Error = sum.Err.Error()
			}
			items = append(items, item)
		}
		if err := writeJSON(out, items); err != nil {
			return err
		}
	default:
		fmt.Fprint(out, ui.RenderSummaryTable(sums, ui.TableOpts{
			Color: s.useColor(out),
			Width: terminalWidth(out),
		}))
	}

	s.printTimings(cmd.ErrOrStderr(), fileTimer(sums))
	if failed {
		return errFilesFailed
	}
	return nil
}
