// Package types implements the type vocabulary and symbol table of the SSL language.
// This package has no AST dependencies.
package types

import "strings"

// Type is a static type tag such as "int" or "float[]".
// Tags compare with ==; two types are identical exactly when their tags are equal.
type Type string

// Basic types.
const (
	Invalid Type = ""
	Int     Type = "int"
	Float   Type = "float"
	String  Type = "string"
	Bool    Type = "bool"
)

const arraySuffix = "[]"

// ArrayOf returns the array type with element type elem.
func ArrayOf(elem Type) Type {
	return elem + arraySuffix
}

// IsArray reports whether t is an array type.
func (t Type) IsArray() bool {
	return strings.HasSuffix(string(t), arraySuffix)
}

// Elem returns the element type of an array type, or Invalid for other types.
func (t Type) Elem() Type {
	if !t.IsArray() {
		return Invalid
	}
	return t[:len(t)-len(arraySuffix)]
}

func (t Type) String() string {
	if t == Invalid {
		return "invalid type"
	}
	return string(t)
}
