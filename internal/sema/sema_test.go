package sema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sslang/sslc/internal/syntax"
	"github.com/sslang/sslc/internal/types"
)

// ----------------------------------------------------------------------------
// Test helpers

func parse(t *testing.T, src string) *syntax.Program {
	t.Helper()
	prog, err := syntax.NewParser("test.ssl", strings.NewReader(src)).ParseProgram()
	require.NoError(t, err)
	return prog
}

func check(t *testing.T, src string) (*types.SymbolTable, error) {
	t.Helper()
	syms := types.NewSymbolTable()
	err := New(syms).Analyze(parse(t, src))
	return syms, err
}

func expectNoErrors(t *testing.T, src string) *types.SymbolTable {
	t.Helper()
	syms, err := check(t, src)
	require.NoError(t, err)
	assert.Equal(t, 1, syms.Depth(), "scopes left open")
	return syms
}

func expectError(t *testing.T, src string, kind syntax.ErrorKind, msg string) *syntax.Error {
	t.Helper()
	syms, err := check(t, src)
	require.Error(t, err)
	e, ok := syntax.AsError(err)
	require.True(t, ok, "error %v is not *syntax.Error", err)
	assert.Equal(t, kind, e.Kind, "%v", e)
	assert.Equal(t, msg, e.Msg)
	assert.Equal(t, 1, syms.Depth(), "scopes left open after error")
	return e
}

// fn wraps body in a function returning int so log and ret are allowed.
func fn(body string) string {
	return "function main() -> int {\n" + body + "\nret(0);\n}\n"
}

// ----------------------------------------------------------------------------
// Declarations and assignments

func TestDeclarationRecordsType(t *testing.T) {
	syms := expectNoErrors(t, "int x = 5;")
	info, ok := syms.SymbolInfo("x")
	require.True(t, ok)
	assert.Equal(t, types.Int, info.Type)
	assert.Equal(t, 1, info.ScopeID)
}

func TestValidPrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"assign same type", "int y = 20; y = y + 10;"},
		{"all scalar types", `int i = 1; flt f = 1.5; str s = "s"; bool b = false;`},
		{"no initializer", "int x; x = 3;"},
		{"initializer uses global", "int a = 1; int b = a * 2;"},
		{"comparison of mixed types", "bool b = 1 < 2.0;"},
		{"logical", "bool b = true and not false or 1 equals 1;"},
		{"negation", "flt f = -2.5; int i = - - 3;"},
		{"array", "int[3] xs = {1, 2, 3}; xs.add(4); xs.remove(0);"},
		{"unsized array", "str[] names = {\"a\"}; names.add(\"b\");"},
		{"empty array", "flt[2] fs;"},
		{"if condition", fn("if (1 < 2) { log(1); }")},
		{"arithmetic in comparison", fn("int i = 0; int n = 5; if (i + 1 < n) { ret(1); }")},
		{"chained comparisons", fn("int i = 1; loop (i > 0 and i * 2 <= 10 or false) { i = i - 1; }")},
		{"left grouping", "int d = 10 - 2 - 3; flt q = 8.0 / 4.0 / 2.0;"},
		{"if else", fn(`if (true) { log("a"); } else { log(2.0); }`)},
		{"while", fn("int i = 0; loop (i < 3) { i = i + 1; }")},
		{"while alias", fn("bool go = true; while (go) { go = false; }")},
		{"range loop", fn("int n = 3; loop range(0, n) { log(n); }")},
		{"for alias", fn("for range(1, 2) { print(true); }")},
		{"shadowing", fn("int x = 1; { flt x = 2.0; log(x); } x = 3;")},
		{"shadow global", "int x = 1;\n" + fn("str x = \"s\"; log(x);")},
		{"block scoped names reusable", fn("{ int t = 1; } { bool t = true; }")},
		{"loop body scope", fn("loop range(0, 2) { int k = 1; } int k = 2;")},
		{"top-level exprs", "int x = 1; x = 2\nx + 1"},
		{
			"call",
			"function add(int: a, int: b) -> int { ret(a + b); }\ncall add(1, 2);",
		},
		{
			"recursion",
			"function f(int: n) -> int { if (n < 1) { ret(0); } else { call f(n - 1); ret(n); } }",
		},
		{
			"call inside function",
			"function g(flt: x) -> flt { ret(x); }\n" + fn("call g(1.5);"),
		},
		{
			"globals visible in functions",
			"str greeting = \"hi\";\nfunction hello() -> str { ret(greeting); }",
		},
		{
			"return in nested block",
			"function f() -> bool { { ret(true); } }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectNoErrors(t, tt.src)
		})
	}
}

func TestNameErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"redeclared global", "int x = 1; flt x = 2.0;", `"x" redeclared in this scope`},
		{"redeclared in block", fn("{ int x; int x; }"), `"x" redeclared in this scope`},
		{"undeclared", "int x = y;", `undeclared variable "y"`},
		{"self reference", "int x = x;", `undeclared variable "x"`},
		{"assign undeclared", "z = 1;", `assignment to undeclared variable "z"`},
		{"out of scope", fn("{ int t = 1; } log(t);"), `undeclared variable "t"`},
		{"loop variable out of scope", fn("loop range(0, 1) { int k = 0; } k = 1;"), `assignment to undeclared variable "k"`},
		{"undeclared function", "call nope(1);", `call to undeclared function "nope"`},
		{"call before definition", "call f();\nfunction f() -> int { ret(1); }", `call to undeclared function "f"`},
		{"function redeclared", "function f() -> int { ret(1); }\nfunction f() -> int { ret(2); }", `function "f" redeclared`},
		{"duplicate parameter", "function f(int: a, flt: a) -> int { ret(1); }", `duplicate parameter "a" in function "f"`},
		{"param redeclared in body", "function f(int: a) -> int { int a = 2; ret(a); }", `"a" redeclared in this scope`},
		{"locals not global", "function f() -> int { int l = 1; ret(l); }\nl = 2;", `assignment to undeclared variable "l"`},
		{"unknown method", "int[] xs; xs.push(1);", `unknown array method "push"`},
		{"undeclared receiver", "ys.add(1);", `undeclared variable "ys"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, tt.src, syntax.NameError, tt.msg)
		})
	}
}

func TestTypeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"int to float assignment", "flt y = 20.0; y = 5;", `cannot assign int value to float variable "y"`},
		{"float to int init", "int x = 1.0;", `cannot initialize int variable "x" with float value`},
		{"string to bool init", `bool b = "true";`, `cannot initialize bool variable "b" with string value`},
		{"mixed arithmetic", "flt f = 1 + 2.0;", "mismatched types int and float for operator +"},
		{"mixed arithmetic in chain", "int i = 1 * 2 + 3.0;", "mismatched types int and float for operator +"},
		{"bool operand in chain", "bool b = 1 < 2 * true;", "mismatched types int and bool for operator *"},
		{"string arithmetic", `str s = "a" + "b";`, "operator + not defined on string"},
		{"comparison to int var", "int i = 1 < 2;", `cannot initialize int variable "i" with bool value`},
		{"negate bool", "bool b = -true;", "operator - not defined on bool"},
		{"not int", "int i = not 1;", "operator not not defined on int"},
		{"if condition", "if (5) { log(1); }", "non-boolean condition in if statement (type int)"},
		{"while condition", fn("loop (1) { }"), "non-boolean condition in loop statement (type int)"},
		{"range bound", fn("loop range(0, 2.5) { }"), "range bound must be int, got float"},
		{"log outside function", "log(1);", "log statement outside function body"},
		{"ret outside function", "ret(1);", "ret statement outside function body"},
		{"log nested outside function", "if (true) { log(1); }", "log statement outside function body"},
		{"log array", fn("int[] xs; log(xs);"), "cannot log value of type int[]"},
		{"return type", "function f() -> int { ret(1.5); }", `cannot return float value from function "f" returning int`},
		{"missing return", "function f() -> int { log(1); }", `missing return at end of function "f"`},
		{"missing else return", "function f() -> int { if (true) { ret(1); } }", `missing return at end of function "f"`},
		{"return only in loop", "function f() -> int { loop (true) { ret(1); } }", `missing return at end of function "f"`},
		{"call arity", "function foo(int: a) -> int { ret(a); }\ncall foo(1, 2);", `function "foo" expects 1 arguments, got 2`},
		{"call argument type", "function foo(int: a) -> int { ret(a); }\ncall foo(1.0);", `cannot use float value as int argument "a" to foo`},
		{"array element", "int[2] xs = {1, 2.0};", "array element 1 has type float, want int"},
		{"array too many", "int[2] xs = {1, 2, 3};", `too many initializers for int[2] "xs": 3`},
		{"add wrong type", "int[] xs; xs.add(\"s\");", "cannot use string value as int argument to xs.add"},
		{"remove float index", "str[] xs; xs.remove(1.0);", "cannot use float value as int argument to xs.remove"},
		{"add arity", "int[] xs; xs.add(1, 2);", "add expects 1 argument, got 2"},
		{"method on scalar", "int x; x.add(1);", `x.add undefined ("x" is int, not an array)`},
		{"assign array to scalar", "int[] xs; int y; y = xs;", `cannot assign int[] value to int variable "y"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectError(t, tt.src, syntax.TypeError, tt.msg)
		})
	}
}

func TestErrorPositions(t *testing.T) {
	e := expectError(t, "int a = 1;\nflt b = a;", syntax.TypeError, `cannot initialize float variable "b" with int value`)
	assert.Equal(t, "test.ssl:2:9", e.Pos.String())

	e = expectError(t, "int a = 1;\n  int a = 2;", syntax.NameError, `"a" redeclared in this scope`)
	assert.Equal(t, "test.ssl:2:3", e.Pos.String())

	e = expectError(t, "function f() -> int {\n  log(1);\n}", syntax.TypeError, `missing return at end of function "f"`)
	assert.Equal(t, "test.ssl:3:1", e.Pos.String())
}

// The first violation stops analysis; later ones are not reported.
func TestFirstErrorAborts(t *testing.T) {
	syms, err := check(t, "int a = 1.0; int b = nope; int c = 3;")
	e, ok := syntax.AsError(err)
	require.True(t, ok)
	assert.Equal(t, syntax.TypeError, e.Kind)
	assert.False(t, syms.IsDeclared("c"))
}

func TestScopesBalancedOnError(t *testing.T) {
	src := "function f(int: a) -> int {\n{ { loop (true) { int z = 1; z = 2.0; } } }\nret(a);\n}"
	syms, err := check(t, src)
	require.Error(t, err)
	assert.Equal(t, 1, syms.Depth())
	assert.False(t, syms.IsDeclared("a"))
	assert.False(t, syms.IsDeclared("z"))

	// the function was registered before its body failed
	_, ok := syms.FunctionInfo("f")
	assert.True(t, ok)
}

func TestFunctionsRegistered(t *testing.T) {
	syms := expectNoErrors(t, "function area(flt: w, flt: h) -> flt { ret(w * h); }")
	sig, ok := syms.FunctionInfo("area")
	require.True(t, ok)
	assert.Equal(t, types.FunctionInfo{
		Name:   "area",
		Result: types.Float,
		Params: []types.Param{{Name: "w", Type: types.Float}, {Name: "h", Type: types.Float}},
	}, sig)
	assert.False(t, syms.IsDeclared("w"))
}

func TestCheckRequireMain(t *testing.T) {
	prog := parse(t, "int x = 1;")
	err := Check(&Config{RequireMain: true}, prog, types.NewSymbolTable(), nil)
	e, ok := syntax.AsError(err)
	require.True(t, ok)
	assert.Equal(t, syntax.NameError, e.Kind)
	assert.Equal(t, "function main is not defined", e.Msg)

	prog = parse(t, fn(""))
	assert.NoError(t, Check(&Config{RequireMain: true}, prog, types.NewSymbolTable(), nil))
}

func TestInfoTypes(t *testing.T) {
	prog := parse(t, "flt f = 1.5 * 2.0; bool b = f < 3.0;")
	info := &Info{Types: make(map[syntax.Expr]types.Type)}
	require.NoError(t, Check(nil, prog, types.NewSymbolTable(), info))

	mul := prog.Decls[0].(*syntax.FloatDecl).Value
	cmp := prog.Decls[1].(*syntax.BoolDecl).Value
	assert.Equal(t, types.Float, info.TypeOf(mul))
	assert.Equal(t, types.Bool, info.TypeOf(cmp))
	assert.Equal(t, types.Float, info.TypeOf(cmp.(*syntax.BinaryExpr).X))

	var nilInfo *Info
	assert.Equal(t, types.Invalid, nilInfo.TypeOf(mul))
}
