package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stlkit/internal/diag"
	"stlkit/internal/diagfmt"
	"stlkit/internal/driver"
	"stlkit/internal/source"
	"stlkit/internal/stl"
)

type boundsOutput struct {
	Path      string      `json:"path"`
	Triangles int         `json:"triangles"`
	Bounds    *boundsJSON `json:"bounds"`
}

func newBoundsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bounds [flags] file.stl",
		Short: "Print the dimension range of a mesh",
		Args:  cobra.ExactArgs(1),
		RunE:  runBounds,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runBounds(cmd *cobra.Command, args []string) error {
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

	fs := source.NewFileSet()
	id, err := driver.Load(fs, args[0])
	if err != nil {
		return fmt.Errorf("bounds: %w", err)
	}
	m, err := stl.ParseFile(fs.Get(id), stl.Options{Logger: s.logger})
	if err != nil {
		bag := diag.NewBag(0)
		bag.AddError(id, diag.UnknownCode, err)
		errOut := cmd.ErrOrStderr()
		diagfmt.Pretty(errOut, bag, fs, diagfmt.PrettyOpts{Color: s.useColor(errOut)})
		return errFilesFailed
	}
	b, ok := m.DimensionRange()

	out := cmd.OutOrStdout()
	if format == "json" {
		return writeJSON(out, boundsOutput{
			Path:      args[0],
			Triangles: m.TriangleCount(),
			Bounds:    makeBoundsJSON(b, ok),
		})
	}
	if !ok {
		fmt.Fprintln(out, "no triangles")
		return nil
	}
	writeBoundsPretty(out, b)
	return nil
}
