package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stlkit/internal/diag"
	"stlkit/internal/diagfmt"
	"stlkit/internal/driver"
	"stlkit/internal/lexer"
	"stlkit/internal/source"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.stl",
		Short: "Tokenize an ASCII STL file",
		Long:  `Tokenize breaks an ASCII STL file down into its tokens`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if err := checkFormat(format, "pretty", "json"); err != nil {
		return err
	}

	fs := source.NewFileSet()
	id, err := driver.Load(fs, filePath)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выполняем токенизацию
	tokens, err := lexer.New(fs.Get(id), lexer.Options{Logger: s.logger}).Tokenize()
	if err != nil {
		// Выводим диагностику в stderr
		bag := diag.NewBag(0)
		bag.AddError(id, diag.UnknownCode, err)
		errOut := cmd.ErrOrStderr()
		diagfmt.Pretty(errOut, bag, fs, diagfmt.PrettyOpts{Color: s.useColor(errOut)})
		return errFilesFailed
	}

	// Выводим токены в выбранном формате
	out := cmd.OutOrStdout()
	if format == "json" {
		return diagfmt.FormatTokensJSON(out, tokens)
	}
	return diagfmt.FormatTokensPretty(out, tokens, fs)
}
