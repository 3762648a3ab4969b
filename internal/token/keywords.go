package token

var keywords = map[string]Kind{
	"fn":       KwFn,
	"pub":      KwPub,
	"let":      KwLet,
	"mut":      KwMut,
	"const":    KwConst,
	"as":       KwAs,
	"return":   KwReturn,
	"if":       KwIf,
	"else":     KwElse,
	"while":    KwWhile,
	"break":    KwBreak,
	"continue": KwContinue,
	"move":     KwMove,
	"true":     KwTrue,
	"false":    KwFalse,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive: only lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
