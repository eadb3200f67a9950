// Package cli provides the command-line interface for combinator.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/combinator/internal/colour"
	"github.com/jmylchreest/combinator/internal/version"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbose bool
	quiet   bool
}

// NewRootCmd builds the combinator command tree.
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "combinator",
		Short: "Find accessible two-colour background combinations",
		Long: `Combinator searches a colour palette for pairs of background colours that
both carry the same text colour at a chosen WCAG contrast level, and that
differ enough from each other to read as distinct.

Accepted pairs are thinned so no two look alike and then ordered so that
neighbouring results look different from each other.

Palettes can be built in (tundra, newyork, tailwind), loaded from a text,
JSON or YAML file, or extracted from an image.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&g.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(g))
	rootCmd.AddCommand(newPalettesCmd(g))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// logger returns a stderr logger at Debug when verbose and a silent one
// otherwise.
func (g *globalOptions) logger(w io.Writer) hclog.Logger {
	if g.verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "combinator",
			Output: w,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "combinator",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// configureColour enables ANSI output when w is a terminal or force is set.
func configureColour(w io.Writer, force bool) {
	colour.DisableColourOutput = !force && !isTerminal(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
