package cli

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goldpath/goldpath/pkg/buildinfo"
)

// newRootCommand builds the common scaffolding shared by both binaries:
// version handling, the --verbose flag, and a context logger attached
// before every run.
func newRootCommand(use, short, long string) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return root
}
