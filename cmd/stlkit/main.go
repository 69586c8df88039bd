package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"stlkit/internal/version"
)

// errFilesFailed сообщает о том, что диагностика уже напечатана,
// а процесс должен завершиться с кодом 1.
var errFilesFailed = errors.New("one or more files failed")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stlkit",
		Short:         "STL mesh codec and inspection toolkit",
		Long:          `stlkit reads, checks and converts STL meshes in the ASCII and binary dialects`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	// Добавляем команды
	root.AddCommand(newInfoCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newTokenizeCmd())
	root.AddCommand(newBoundsCmd())
	root.AddCommand(newVersionCmd())

	// Глобальные флаги
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	root.PersistentFlags().String("config", "", "path to stlkit.toml (default: search upward from the working directory)")
	root.PersistentFlags().Int("jobs", 0, "max parallel workers (0=auto)")
	root.PersistentFlags().String("ui", "auto", "progress UI mode (auto|on|off)")
	root.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")
	root.PersistentFlags().String("log-format", "text", "log format (text|json)")
	root.PersistentFlags().Bool("timings", false, "show timing information")
	root.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	root.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	root.PersistentFlags().String("trace-out", "", "write a runtime trace to file")
	root.PersistentPreRunE = startProfiling
	return root
}

// main builds the command tree and runs it. Any error ends the process with
// status 1; errors other than errFilesFailed are printed to stderr first.
func main() {
	err := newRootCmd().Execute()
	if stopErr := stopProfiling(); stopErr != nil {
		fmt.Fprintf(os.Stderr, "stlkit: %v\n", stopErr)
	}
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	if errors.Is(err, errFilesFailed) {
		return
	}
	fmt.Fprintf(w, "stlkit: %v\n", err)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// isTerminalWriter is isTerminal for writers that may not be files.
func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// terminalWidth returns the column count of w, or 0 when w is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !isTerminal(f) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
