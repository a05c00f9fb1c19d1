package types

import (
	"fmt"
	"sort"
	"strings"
)

// Param is a named, typed function parameter.
type Param struct {
	Name string
	Type Type
}

// FunctionInfo is the signature of a declared function.
type FunctionInfo struct {
	Name   string
	Result Type
	Params []Param
}

// Arity returns the number of declared parameters.
func (f FunctionInfo) Arity() int {
	return len(f.Params)
}

func (f FunctionInfo) String() string {
	var buf strings.Builder
	buf.WriteString(f.Name)
	buf.WriteByte('(')
	for i, p := range f.Params {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s: %s", p.Type, p.Name)
	}
	fmt.Fprintf(&buf, ") -> %s", f.Result)
	return buf.String()
}

// SymbolTable is a stack of variable scopes plus a flat function registry.
// A new table starts with the global scope entered.
//
// EnterScope and LeaveScope must be called in matching pairs.
type SymbolTable struct {
	top   *Scope
	funcs map[string]FunctionInfo
}

// NewSymbolTable returns a table with only the global scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		top:   NewScope(nil, "global"),
		funcs: make(map[string]FunctionInfo),
	}
}

// EnterScope pushes a new innermost scope.
func (t *SymbolTable) EnterScope() {
	t.EnterScopeNamed("block")
}

// EnterScopeNamed is like EnterScope but records comment for debugging dumps.
func (t *SymbolTable) EnterScopeNamed(comment string) {
	t.top = NewScope(t.top, comment)
}

// LeaveScope pops the innermost scope. Leaving the global scope is a no-op.
func (t *SymbolTable) LeaveScope() {
	if t.top.parent != nil {
		t.top = t.top.parent
	}
}

// Depth returns the current scope depth; the global scope has depth 1.
func (t *SymbolTable) Depth() int {
	return t.top.depth
}

// Scope returns the innermost scope.
func (t *SymbolTable) Scope() *Scope {
	return t.top
}

// AddVariable declares name in the innermost scope.
// It reports false, without changing the table, if name already exists in that scope.
// Shadowing a name from an enclosing scope is allowed.
func (t *SymbolTable) AddVariable(name string, typ Type) bool {
	return t.top.Insert(name, typ)
}

// IsDeclared reports whether name is visible from the innermost scope.
func (t *SymbolTable) IsDeclared(name string) bool {
	_, scope := t.top.LookupParent(name)
	return scope != nil
}

// SymbolInfo returns the innermost visible binding of name.
func (t *SymbolTable) SymbolInfo(name string) (SymbolInfo, bool) {
	info, scope := t.top.LookupParent(name)
	return info, scope != nil
}

// AddFunction registers a function signature. Function names are global;
// it reports false if a function with the same name already exists.
func (t *SymbolTable) AddFunction(info FunctionInfo) bool {
	if _, exists := t.funcs[info.Name]; exists {
		return false
	}
	t.funcs[info.Name] = info
	return true
}

// FunctionInfo returns the signature registered under name.
func (t *SymbolTable) FunctionInfo(name string) (FunctionInfo, bool) {
	info, ok := t.funcs[name]
	return info, ok
}

// Functions returns the registered function names, sorted.
func (t *SymbolTable) Functions() []string {
	names := make([]string, 0, len(t.funcs))
	for name := range t.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String dumps the live scopes, innermost first, followed by the functions.
func (t *SymbolTable) String() string {
	var buf strings.Builder
	indent := 0
	for s := t.top; s != nil; s = s.parent {
		s.writeTo(&buf, indent)
		indent++
	}
	for _, name := range t.Functions() {
		fmt.Fprintf(&buf, "func %s\n", t.funcs[name])
	}
	return buf.String()
}
