// Package sema implements scope and type checking for SSL programs.
package sema

import (
	"github.com/sslang/sslc/internal/syntax"
	"github.com/sslang/sslc/internal/types"
)

// Config specifies the configuration for analysis.
type Config struct {
	// RequireMain reports a NameError if the program defines no main function.
	RequireMain bool
}

// Info holds the results of analysis.
type Info struct {
	// Types maps each checked expression to its static type.
	Types map[syntax.Expr]types.Type
}

// TypeOf returns the recorded type of x, or types.Invalid.
func (info *Info) TypeOf(x syntax.Expr) types.Type {
	if info == nil || info.Types == nil {
		return types.Invalid
	}
	return info.Types[x]
}

// Check analyzes prog against syms and returns the first error found.
// syms is left holding the global variables and every function signature.
func Check(conf *Config, prog *syntax.Program, syms *types.SymbolTable, info *Info) error {
	a := New(syms)
	if conf != nil {
		a.conf = *conf
	}
	a.info = info
	return a.Analyze(prog)
}
