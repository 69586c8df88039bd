package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stlkit/internal/diag"
	"stlkit/internal/diagfmt"
	"stlkit/internal/driver"
	"stlkit/internal/source"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] file.stl...",
		Short: "Decode STL files and report diagnostics",
		Long:  `Check decodes every file and reports parse errors and binary layout warnings`,
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Bool("lint", true, "warn about trailing bytes and count mismatches in binary files")
	cmd.Flags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	cmd.Flags().Bool("notes", true, "show diagnostic notes")
	cmd.Flags().Bool("werror", false, "treat warnings as errors")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if err := checkFormat(format, "pretty", "json"); err != nil {
		return err
	}
	lint, err := cmd.Flags().GetBool("lint")
	if err != nil {
		return fmt.Errorf("failed to get lint flag: %w", err)
	}
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	showNotes, err := cmd.Flags().GetBool("notes")
	if err != nil {
		return fmt.Errorf("failed to get notes flag: %w", err)
	}
	werror, err := cmd.Flags().GetBool("werror")
	if err != nil {
		return fmt.Errorf("failed to get werror flag: %w", err)
	}

	fs := source.NewFileSet()
	sums, err := s.inspect(cmd.Context(), "checking", args, driver.Options{
		FileSet: fs,
		Lint:    lint,
	})
	if err != nil {
		return err
	}

	// Общий мешок в порядке аргументов: лимит сквозной, а порядок не
	// зависит от того, какой воркер загрузил файл первым.
	bag := diag.NewBag(maxDiagnostics)
	failed, warned := false, false
	for _, sum := range sums {
		failed = failed || sum.Err != nil || sum.Bag.HasErrors()
		warned = warned || sum.Bag.HasWarnings()
		sum.Bag.Sort()
		sum.Bag.Dedup()
		for _, d := range sum.Bag.Items() {
			bag.Add(d)
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		if err := diagfmt.JSON(out, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeAuto,
			Max:              maxDiagnostics,
			IncludeNotes:     showNotes,
		}); err != nil {
			return err
		}
	default:
		diagfmt.Pretty(out, bag, fs, diagfmt.PrettyOpts{
			Color:     s.useColor(out),
			PathMode:  diagfmt.PathModeAuto,
			ShowNotes: showNotes,
		})
		if !failed && !warned {
			s.printf(out, "ok: %d file(s)\n", len(sums))
		}
	}

	s.printTimings(cmd.ErrOrStderr(), fileTimer(sums))
	if failed || (werror && warned) {
		return errFilesFailed
	}
	return nil
}
