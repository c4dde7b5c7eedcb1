package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dennisklein/smb-zfs-mock/internal/mock"
)

func newRootCmd(responder *mock.Responder) *cobra.Command {
	return &cobra.Command{
		Use:   "smb-zfs [--json] <command> [args...]",
		Short: "Mock smb-zfs that answers with canned JSON",
		Long: `smb-zfs is a stand-in for the smb-zfs management tool. It prints fixed JSON
for get-state, list pools and the create, modify, delete, setup and passwd
commands so a UI can be developed without a ZFS/Samba host.`,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		// "completion" is not an smb-zfs command; let the mock reject it.
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(_ *cobra.Command, args []string) error {
			return responder.Run(args)
		},
	}
}

// execute runs one command line and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	responder := mock.NewResponder(mock.Config{
		Stdout: stdout,
		Logger: zap.NewNop(),
	})

	rootCmd := newRootCmd(responder)
	// A nil slice would make cobra fall back to os.Args.
	rootCmd.SetArgs(append([]string{}, args...))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		printDiagnostic(stderr, responder.Usage(rootCmd.Name()), err)

		return 1
	}

	return 0
}

// printDiagnostic writes the single failure line. Only the leading keyword
// is styled; the rest is written verbatim. Styling is dropped when stderr is
// not a terminal.
func printDiagnostic(w io.Writer, usage string, err error) {
	renderer := lipgloss.NewRenderer(w)

	var prefix, rest string

	if errors.Is(err, mock.ErrMissingCommand) {
		prefix, rest, _ = strings.Cut(usage, " ")
		prefix = renderer.NewStyle().Bold(true).Render(prefix)
	} else {
		prefix = renderer.NewStyle().Foreground(lipgloss.Color("9")).Render("Error:")
		rest = err.Error()
	}

	_, _ = fmt.Fprintln(w, prefix+" "+rest) //nolint:errcheck // nowhere left to report to
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
