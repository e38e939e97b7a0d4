package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version, Commit and BuildDate are set via LDFLAGS at build time.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var (
	verbose    bool
	configFile string
)

// NewRootCmd builds the command tree. Invoked with a single file and no
// subcommand, the root behaves like "check".
func NewRootCmd() *cobra.Command {
	opts := &checkOptions{}

	root := &cobra.Command{
		Use:   "stylecheck <file>",
		Short: "Line-oriented style checker for C sources",
		Long:  "stylecheck scans a C source file line by line and reports formatting violations: glued operators and keywords, loose parentheses and semicolons, tabs, trailing spaces, and block comment style.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
		Args: exactlyOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts.addFlags(root)

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&configFile, "config", ".stylecheck.yml", "path to config file")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newChecksCmd())
	root.AddCommand(newVersionCmd())

	return root
}
