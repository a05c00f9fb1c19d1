// Package compiler drives the SSL front end over compilation units:
// lexing, parsing and semantic analysis.
package compiler

import (
	"bytes"
	"context"
	"os"

	"github.com/google/uuid"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/sslang/sslc/internal/sema"
	"github.com/sslang/sslc/internal/syntax"
	"github.com/sslang/sslc/internal/types"
)

// Unit is one source file handed to the front end.
type Unit struct {
	ID   uuid.UUID
	Name string
	Src  []byte
}

// Result is the outcome of a successful Check.
type Result struct {
	Unit    *Unit
	Program *syntax.Program
	Symbols *types.SymbolTable
	Info    *sema.Info
}

// NewUnit wraps source text under a fresh id.
func NewUnit(name string, src []byte) *Unit {
	return &Unit{
		ID:   uuid.New(),
		Name: name,
		Src:  src,
	}
}

// ReadUnit reads the file at path into a new Unit.
func ReadUnit(ctx context.Context, path string) (*Unit, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	u := NewUnit(path, src)

	tlog.SpanFromContext(ctx).Printw("read file", "name", path, "size", len(src), "unit", u.ID)

	return u, nil
}

// Tokens lexes the whole unit. The stream always ends with an End token;
// err is the first lexical error, if any.
func Tokens(ctx context.Context, u *Unit) (toks []syntax.Token, err error) {
	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "lex", "name", u.Name, "unit", u.ID)
	defer tr.Finish("err", &err)

	var first *syntax.Error
	l := syntax.NewLexer(u.Name, bytes.NewReader(u.Src), func(pos syntax.Pos, msg string) {
		if first == nil {
			first = syntax.Errorf(syntax.LexicalError, pos, "%s", msg)
		}
	})

	toks = l.Tokens()

	tr.Printw("tokens", "count", len(toks))

	if first != nil {
		return toks, first
	}

	return toks, nil
}

// Parse builds the AST of the unit.
func Parse(ctx context.Context, u *Unit) (prog *syntax.Program, err error) {
	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "parse", "name", u.Name, "unit", u.ID)
	defer tr.Finish("err", &err)

	prog, err = syntax.NewParser(u.Name, bytes.NewReader(u.Src)).ParseProgram()
	if err != nil {
		return nil, errors.Wrap(err, "parse %v", u.Name)
	}

	tr.Printw("parsed", "decls", len(prog.Decls), "funcs", len(prog.Funcs), "stmts", len(prog.Stmts), "exprs", len(prog.Exprs))

	return prog, nil
}

// Check parses and analyzes the unit.
func Check(ctx context.Context, u *Unit, conf *sema.Config) (res *Result, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "check", "name", u.Name, "unit", u.ID)
	defer tr.Finish("err", &err)

	prog, err := Parse(ctx, u)
	if err != nil {
		return nil, err
	}

	res = &Result{
		Unit:    u,
		Program: prog,
		Symbols: types.NewSymbolTable(),
		Info:    &sema.Info{Types: make(map[syntax.Expr]types.Type)},
	}

	err = sema.Check(conf, prog, res.Symbols, res.Info)
	if err != nil {
		return nil, errors.Wrap(err, "analyze %v", u.Name)
	}

	tr.Printw("analyzed", "functions", len(res.Symbols.Functions()), "exprs", len(res.Info.Types))

	return res, nil
}

// CheckFiles checks every file in turn and passes each outcome to report.
// A failing unit does not stop the batch. It returns the number of failed units.
func CheckFiles(ctx context.Context, paths []string, conf *sema.Config, report func(name string, res *Result, err error)) (failed int) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "check files", "files", len(paths))
	defer func() { tr.Finish("failed", failed) }()

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			report(path, nil, err)
			failed++
			continue
		}

		res, err := checkFile(ctx, path, conf)
		if err != nil {
			failed++
		}

		report(path, res, err)
	}

	return failed
}

func checkFile(ctx context.Context, path string, conf *sema.Config) (*Result, error) {
	u, err := ReadUnit(ctx, path)
	if err != nil {
		return nil, errors.Wrap(err, "%v", path)
	}

	return Check(ctx, u, conf)
}

// Diagnostic returns the front-end error carried by err, if any.
func Diagnostic(err error) (*syntax.Error, bool) {
	return syntax.AsError(err)
}
