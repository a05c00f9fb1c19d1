package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/sslang/sslc/internal/compiler"
	"github.com/sslang/sslc/internal/config"
)

var (
	colorError = lipgloss.Color("#EF4444")
	colorOK    = lipgloss.Color("#10B981")
	colorMuted = lipgloss.Color("#6B7280")
)

// reporter writes diagnostics, styled unless color is off.
type reporter struct {
	w     io.Writer
	plain bool

	label lipgloss.Style
	kind  lipgloss.Style
	pos   lipgloss.Style
	ok    lipgloss.Style
}

func newReporter(w io.Writer, mode string) *reporter {
	r := lipgloss.NewRenderer(w)

	switch mode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return &reporter{
		w:     w,
		plain: mode == config.ColorNever,
		label: r.NewStyle().Foreground(colorError).Bold(true),
		kind:  r.NewStyle().Bold(true),
		pos:   r.NewStyle().Foreground(colorMuted),
		ok:    r.NewStyle().Foreground(colorOK),
	}
}

func (r *reporter) render(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

// Error prints one diagnostic line. Front-end errors are shown as
// position, kind and message; anything else as is.
func (r *reporter) Error(err error) {
	label := r.render(r.label, "error")

	e, ok := compiler.Diagnostic(err)
	if !ok {
		fmt.Fprintf(r.w, "%s: %v\n", label, err)
		return
	}

	if e.Pos.IsValid() {
		fmt.Fprintf(r.w, "%s: %s: %s: %s\n", label, r.render(r.pos, e.Pos.String()), r.render(r.kind, e.Kind.String()), e.Msg)
		return
	}

	fmt.Fprintf(r.w, "%s: %s: %s\n", label, r.render(r.kind, e.Kind.String()), e.Msg)
}

// OK prints a success line for a checked unit.
func (r *reporter) OK(w io.Writer, name string, res *compiler.Result) {
	fmt.Fprintf(w, "%s %s (%d globals, %d functions)\n", r.render(r.ok, "ok"), name,
		res.Symbols.Scope().Len(), len(res.Symbols.Functions()))
}
