package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Lifetime represents a borrow-scope label token ('a).
	Lifetime

	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwPub represents the 'pub' keyword.
	KwPub // pub
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwMove represents the 'move' keyword.
	KwMove // move
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	// IntLit represents an integer literal token (suffix kept in Text).
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// StringLit represents a string literal token.
	StringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assign operator token.
	Assign // =
	// EqEq represents the equality operator token.
	EqEq // ==
	// Bang represents the bang operator token.
	Bang // !
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Lt represents the less-than token.
	Lt // <
	// LtEq represents the less-or-equal token.
	LtEq // <=
	// Gt represents the greater-than token. `>>` is always lexed as two Gt
	// tokens so nested generic argument lists close without a splitting pass.
	Gt // >
	// GtEq represents the greater-or-equal token.
	GtEq // >=
	// AndAnd represents the logical AND token.
	AndAnd // &&
	// OrOr represents the logical OR token.
	OrOr // ||
	// Amp represents the ampersand token.
	Amp // &
	// Pipe represents the pipe token.
	Pipe // |
	// Question represents the question operator token.
	Question // ?
	// Colon represents the colon token.
	Colon // :
	// ColonColon represents the path separator token.
	ColonColon // ::
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// Arrow represents the return-type arrow token.
	Arrow // ->
	// FatArrow represents the fat arrow token.
	FatArrow // =>
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Pound represents the attribute opener token.
	Pound // #
	// Underscore represents a lone underscore token.
	Underscore // _
)

// String returns a stable name for the kind, used by debug dumps.
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case Lifetime:
		return "Lifetime"
	case KwFn:
		return "KwFn"
	case KwPub:
		return "KwPub"
	case KwLet:
		return "KwLet"
	case KwMut:
		return "KwMut"
	case KwConst:
		return "KwConst"
	case KwAs:
		return "KwAs"
	case KwReturn:
		return "KwReturn"
	case KwIf:
		return "KwIf"
	case KwElse:
		return "KwElse"
	case KwWhile:
		return "KwWhile"
	case KwBreak:
		return "KwBreak"
	case KwContinue:
		return "KwContinue"
	case KwMove:
		return "KwMove"
	case KwTrue:
		return "KwTrue"
	case KwFalse:
		return "KwFalse"
	case IntLit:
		return "IntLit"
	case FloatLit:
		return "FloatLit"
	case StringLit:
		return "StringLit"
	case Plus:
		return "Plus"
	case Minus:
		return "Minus"
	case Star:
		return "Star"
	case Slash:
		return "Slash"
	case Percent:
		return "Percent"
	case Assign:
		return "Assign"
	case EqEq:
		return "EqEq"
	case Bang:
		return "Bang"
	case BangEq:
		return "BangEq"
	case Lt:
		return "Lt"
	case LtEq:
		return "LtEq"
	case Gt:
		return "Gt"
	case GtEq:
		return "GtEq"
	case AndAnd:
		return "AndAnd"
	case OrOr:
		return "OrOr"
	case Amp:
		return "Amp"
	case Pipe:
		return "Pipe"
	case Question:
		return "Question"
	case Colon:
		return "Colon"
	case ColonColon:
		return "ColonColon"
	case Semicolon:
		return "Semicolon"
	case Comma:
		return "Comma"
	case Dot:
		return "Dot"
	case Arrow:
		return "Arrow"
	case FatArrow:
		return "FatArrow"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	case Pound:
		return "Pound"
	case Underscore:
		return "Underscore"
	default:
		return "Unknown"
	}
}
