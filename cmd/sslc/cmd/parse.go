package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"tlog.app/go/errors"

	"github.com/sslang/sslc/internal/compiler"
	"github.com/sslang/sslc/internal/config"
	"github.com/sslang/sslc/internal/syntax"
)

func newParseCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the syntax tree of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				opts.cfg.Output.Format = format
				if err := opts.cfg.Validate(); err != nil {
					return err
				}
			}

			return runParse(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, "output format: text, json, yaml or sexpr")

	return cmd
}

func runParse(cmd *cobra.Command, opts *options, path string) error {
	u, err := compiler.ReadUnit(cmd.Context(), path)
	if err != nil {
		return errors.Wrap(err, "%v", path)
	}

	prog, err := compiler.Parse(cmd.Context(), u)
	if err != nil {
		opts.reporter(cmd).Error(err)
		return errFailed
	}

	return printTree(cmd.OutOrStdout(), opts.cfg.Output.Format, prog)
}

func printTree(w io.Writer, format string, prog *syntax.Program) error {
	switch format {
	case config.FormatJSON:
		return syntax.FprintJSON(w, prog)
	case config.FormatYAML:
		return syntax.FprintYAML(w, prog)
	case config.FormatSExpr:
		_, err := fmt.Fprintln(w, prog)
		return err
	default:
		return syntax.Fprint(w, prog)
	}
}
