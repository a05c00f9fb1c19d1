package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sslang/sslc/internal/compiler"
	"github.com/sslang/sslc/internal/sema"
)

func newCheckCmd(opts *options) *cobra.Command {
	var requireMain bool
	var dumpSymbols bool

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Run semantic analysis on source files",
		Long: `Check parses and analyzes each file in turn. A failing file does
not stop the batch; the exit status is 1 if any file failed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("require-main") {
				opts.cfg.Check.RequireMain = requireMain
			}

			conf := &sema.Config{RequireMain: opts.cfg.Check.RequireMain}
			rep := opts.reporter(cmd)
			out := cmd.OutOrStdout()

			failed := compiler.CheckFiles(cmd.Context(), args, conf, func(name string, res *compiler.Result, err error) {
				if err != nil {
					rep.Error(err)
					return
				}

				rep.OK(out, name, res)
				if dumpSymbols {
					fmt.Fprint(out, res.Symbols.String())
				}
			})

			if failed > 0 {
				return errFailed
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&requireMain, "require-main", false, "report an error if no main function is defined")
	cmd.Flags().BoolVar(&dumpSymbols, "symbols", false, "print the symbol table of each checked file")

	return cmd
}
