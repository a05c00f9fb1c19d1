package types

// IsNumeric reports whether t is int or float.
func (t Type) IsNumeric() bool {
	return t == Int || t == Float
}

// IsBoolean reports whether t is bool.
func (t Type) IsBoolean() bool {
	return t == Bool
}

// IsBasic reports whether t is one of the predeclared scalar types.
func (t Type) IsBasic() bool {
	switch t {
	case Int, Float, String, Bool:
		return true
	}
	return false
}

// IsPrintable reports whether values of type t can be printed or returned.
func (t Type) IsPrintable() bool {
	return t.IsBasic()
}

// Identical reports whether x and y are identical types.
// There are no implicit conversions, so int and float are never identical.
func Identical(x, y Type) bool {
	return x != Invalid && x == y
}
