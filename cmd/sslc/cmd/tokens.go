package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"tlog.app/go/errors"

	"github.com/sslang/sslc/internal/compiler"
)

func newTokensCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, opts, args[0])
		},
	}
}

// runTokens prints all tokens with positions.
// Lexing continues past errors, so the full stream is always shown.
func runTokens(cmd *cobra.Command, opts *options, path string) error {
	u, err := compiler.ReadUnit(cmd.Context(), path)
	if err != nil {
		return errors.Wrap(err, "%v", path)
	}

	toks, lexErr := compiler.Tokens(cmd.Context(), u)

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-20s %-14s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Fprintf(w, "%-20s %-14s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 14), strings.Repeat("-", 20))

	for _, t := range toks {
		fmt.Fprintf(w, "%-20s %-14s %s\n", t.Pos, t.Kind, formatLiteral(t.Lit))
	}

	if lexErr != nil {
		opts.reporter(cmd).Error(lexErr)
		return errFailed
	}

	return nil
}

// formatLiteral quotes a lexeme with control characters made visible.
func formatLiteral(lit string) string {
	var b strings.Builder

	b.WriteByte('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')

	return b.String()
}
