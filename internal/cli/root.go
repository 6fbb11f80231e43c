package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the orbita CLI with the given base context and arguments
// (excluding the program name). It returns the error of the executed command.
func Execute(ctx context.Context, args []string) error {
	var verbose bool

	root := &cobra.Command{
		Use:   "orbita",
		Short: "Enumerate orbits of transformation actions",
		Long: "orbita enumerates the orbit of a set of seed points under a set of\n" +
			"generating transformations, described in a TOML file, and reports the\n" +
			"orbit size, strong components, and word graph.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newEnumerateCmd())
	root.AddCommand(newDotCmd())

	root.SetArgs(args)
	root.SetOut(os.Stdout)
	return root.ExecuteContext(ctx)
}
