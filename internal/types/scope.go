package types

import (
	"fmt"
	"sort"
	"strings"
)

// SymbolInfo describes a declared variable.
type SymbolInfo struct {
	Type    Type // declared type
	ScopeID int  // scope depth at declaration time (1 = global)
}

// Scope is one frame of the variable scope stack.
// Frames are linked to their enclosing frame; the global frame has no parent.
type Scope struct {
	parent  *Scope
	elems   map[string]SymbolInfo
	depth   int
	comment string // debugging comment (e.g., "function foo", "block")
}

// NewScope creates a new scope nested in parent.
func NewScope(parent *Scope, comment string) *Scope {
	s := &Scope{
		parent:  parent,
		elems:   make(map[string]SymbolInfo),
		depth:   1,
		comment: comment,
	}
	if parent != nil {
		s.depth = parent.depth + 1
	}
	return s
}

// Parent returns the enclosing scope, or nil for the global scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Depth returns the nesting depth of the scope. The global scope has depth 1.
func (s *Scope) Depth() int {
	return s.depth
}

// Lookup returns the symbol with the given name in this scope only.
func (s *Scope) Lookup(name string) (SymbolInfo, bool) {
	info, ok := s.elems[name]
	return info, ok
}

// LookupParent searches for name from this scope outward through all
// enclosing scopes and returns the innermost binding and its scope.
// The returned scope is nil if the name is not declared.
func (s *Scope) LookupParent(name string) (SymbolInfo, *Scope) {
	for scope := s; scope != nil; scope = scope.Parent() {
		if info, ok := scope.Lookup(name); ok {
			return info, scope
		}
	}
	return SymbolInfo{}, nil
}

// Insert declares name with type typ in this scope.
// It reports false and leaves the scope unchanged if name is already declared here.
func (s *Scope) Insert(name string, typ Type) bool {
	if _, exists := s.Lookup(name); exists {
		return false
	}
	s.elems[name] = SymbolInfo{Type: typ, ScopeID: s.depth}
	return true
}

// Names returns the names declared in the scope, sorted alphabetically.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of names declared in the scope.
func (s *Scope) Len() int {
	return len(s.elems)
}

// String returns a string representation of the scope for debugging.
func (s *Scope) String() string {
	var buf strings.Builder
	s.writeTo(&buf, 0)
	return buf.String()
}

func (s *Scope) writeTo(buf *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(buf, "%sscope %d %s {\n", prefix, s.depth, s.comment)
	for _, name := range s.Names() {
		fmt.Fprintf(buf, "%s  %s: %s\n", prefix, name, s.elems[name].Type)
	}
	fmt.Fprintf(buf, "%s}\n", prefix)
}
