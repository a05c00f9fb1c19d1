package types

// keywordTypes maps the type keywords of the language to their types.
var keywordTypes = map[string]Type{
	"int":  Int,
	"flt":  Float,
	"str":  String,
	"bool": Bool,
}

// FromKeyword returns the type named by a type keyword (int, flt, str, bool).
// The result is Invalid if kw does not name a type.
func FromKeyword(kw string) Type {
	return keywordTypes[kw]
}
