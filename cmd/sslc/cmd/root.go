// Package cmd implements the sslc command line.
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/sslang/sslc/internal/config"
)

// errFailed is returned by commands that already reported their diagnostics.
var errFailed = errors.New("compilation failed")

type options struct {
	cfgFile string
	verbose bool
	color   string

	cfg *config.Config
}

// NewRootCmd builds the sslc command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "sslc",
		Short: "sslc - front end for the SSL language",
		Long: `sslc lexes, parses and checks SSL source files.

Commands:
  tokens   - print the token stream
  parse    - print the syntax tree
  check    - run semantic analysis`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: sslc.toml, sslc.yaml or .sslc.yml in the working directory)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "trace compilation phases to stderr")
	root.PersistentFlags().StringVar(&opts.color, "color", config.ColorAuto, "colorize diagnostics: auto, always or never")

	root.AddCommand(
		newTokensCmd(opts),
		newParseCmd(opts),
		newCheckCmd(opts),
		newVersionCmd(),
	)

	return root
}

// Execute runs sslc and returns the process exit code.
func Execute() int {
	root := NewRootCmd()

	err := root.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}

	if !errors.Is(err, errFailed) {
		fmt.Fprintf(root.ErrOrStderr(), "sslc: %v\n", err)
	}

	return 1
}

// setup loads the configuration, applies flag overrides and installs
// the root log span into the command context.
func (o *options) setup(cmd *cobra.Command) (err error) {
	if o.cfgFile != "" {
		o.cfg, err = config.Load(o.cfgFile)
	} else {
		o.cfg, _, err = config.Discover(".")
	}
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		o.cfg.Log.Verbose = o.verbose
	}
	if flags.Changed("color") {
		o.cfg.Output.Color = o.color
	}

	if err = o.cfg.Validate(); err != nil {
		return err
	}

	var w io.Writer = io.Discard
	if o.cfg.Log.Verbose {
		w = tlog.NewConsoleWriter(cmd.ErrOrStderr(), tlog.LstdFlags)
	}

	tlog.DefaultLogger = tlog.New(w)

	ctx := tlog.ContextWithSpan(cmd.Context(), tlog.Root())
	cmd.SetContext(ctx)

	tlog.Printw("sslc", "command", cmd.Name(), "format", o.cfg.Output.Format, "require_main", o.cfg.Check.RequireMain)

	return nil
}

func (o *options) reporter(cmd *cobra.Command) *reporter {
	return newReporter(cmd.ErrOrStderr(), o.cfg.Output.Color)
}
