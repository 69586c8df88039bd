package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stlkit/internal/diag"
	"stlkit/internal/diagfmt"
	"stlkit/internal/driver"
	"stlkit/internal/source"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [flags] in.stl out.stl",
		Short: "Re-encode an STL file",
		Long: `Convert decodes a file and writes it in the requested dialect.
The output container is taken from --compress, then from the output extension
(.gz, .zst, .lz4), then from [output].compression in stlkit.toml.`,
		Args: cobra.ExactArgs(2),
		RunE: runConvert,
	}
	cmd.Flags().String("to", "", "output dialect (ascii|binary); default keeps the input dialect")
	cmd.Flags().String("compress", "", "output compression (none|gzip|zstd|lz4)")
	cmd.Flags().Int("level", 0, "compression level (0=codec default)")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	in, out := args[0], args[1]

	toValue := s.cfg.Output.Dialect
	if cmd.Flags().Changed("to") {
		if toValue, err = cmd.Flags().GetString("to"); err != nil {
			return fmt.Errorf("failed to get to flag: %w", err)
		}
	}
	to, err := driver.ParseDialect(toValue)
	if err != nil {
		return err
	}

	compression, err := resolveCompression(cmd, out, s.cfg.Output.Compression)
	if err != nil {
		return err
	}

	level := s.cfg.Output.Level
	if cmd.Flags().Changed("level") {
		if level, err = cmd.Flags().GetInt("level"); err != nil {
			return fmt.Errorf("failed to get level flag: %w", err)
		}
	}

	fs := source.NewFileSet()
	res, err := driver.Convert(cmd.Context(), in, out, driver.ConvertOptions{
		To:          to,
		Compression: compression,
		Level:       level,
		FileSet:     fs,
		Logger:      s.logger,
	})
	s.printTimings(cmd.ErrOrStderr(), stageTimer(res.Timings))
	if err != nil {
		if _, ok := diag.AsError(err); !ok {
			return fmt.Errorf("convert %s: %w", in, err)
		}
		bag := diag.NewBag(0)
		bag.AddError(res.FileID, diag.UnknownCode, err)
		errOut := cmd.ErrOrStderr()
		diagfmt.Pretty(errOut, bag, fs, diagfmt.PrettyOpts{Color: s.useColor(errOut)})
		return errFilesFailed
	}

	s.printf(cmd.OutOrStdout(), "%s -> %s: %s to %s, %d triangles, %d bytes (%s)\n",
		in, out, res.From, res.To, res.Triangles, res.Bytes, compression)
	return nil
}

func resolveCompression(cmd *cobra.Command, out, fromConfig string) (driver.Compression, error) {
	if cmd.Flags().Changed("compress") {
		value, err := cmd.Flags().GetString("compress")
		if err != nil {
			return driver.CompressionNone, fmt.Errorf("failed to get compress flag: %w", err)
		}
		return driver.ParseCompression(value)
	}
	if c := driver.CompressionFromPath(out); c != driver.CompressionNone {
		return c, nil
	}
	return driver.ParseCompression(fromConfig)
}
