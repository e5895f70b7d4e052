package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/rdtree/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = buildinfo.Name

// options holds the raw flag values of the root command.
type options struct {
	silent     bool
	verbose    bool
	registry   string
	timeout    time.Duration
	output     string
	configPath string
}

// Execute runs the rdtree CLI with the process arguments.
// The context is canceled on SIGINT/SIGTERM by the caller.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand creates the root command. Markdown goes to stdout, logs and
// status lines go to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   appName + " [package | path/to/package.json]",
		Short: "rdtree prints the recursive dependency tree of an npm package",
		Long: `rdtree walks the dependencies of an npm package breadth-first through the
registry and prints them as a nested markdown list followed by a badge table.

The argument is a path to a package.json, or a package name to look up in the
registry. Without an argument, ./package.json is used.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := withLogger(cmd.Context(), newLogger(stderr, opts.level()))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(opts, cmd.Flags().Changed)
			if err != nil {
				return err
			}
			var input string
			if len(args) > 0 {
				input = args[0]
			}
			return run(cmd.Context(), input, cfg, stdout, stderr)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(stderr)
	root.SetErr(stderr)

	f := root.Flags()
	f.BoolVarP(&opts.silent, "silent", "s", false, "suppress progress and status output")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	f.StringVar(&opts.registry, "registry", "", "npm registry base URL (default "+defaultRegistry+")")
	f.DurationVar(&opts.timeout, "timeout", 0, "per-request HTTP timeout (default 30s)")
	f.StringVarP(&opts.output, "output", "o", "", "write markdown to a file instead of stdout")
	f.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/rdtree/config.toml)")

	return root
}

// level maps --silent and --verbose to a log level. Silent wins.
func (o options) level() log.Level {
	switch {
	case o.silent:
		return log.ErrorLevel
	case o.verbose:
		return log.DebugLevel
	default:
		return log.InfoLevel
	}
}
