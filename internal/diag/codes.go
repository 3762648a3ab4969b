package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the catch-all for uncategorized failures.
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexBadLifetime              Code = 1005

	// Syntactic
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnexpectedTopLevel Code = 2002
	SynExpectIdentifier   Code = 2003
	SynExpectType         Code = 2004
	SynExpectExpression   Code = 2005
	SynExpectColon        Code = 2006
	SynExpectSemicolon    Code = 2007
	SynUnclosedDelimiter  Code = 2008
	SynExpectGt           Code = 2009
	SynExpectLifetime     Code = 2010
	SynAttrNotAllowed     Code = 2011
	SynExpectFnBody       Code = 2012

	// Expansion (the transformation engine)
	ExpInfo               Code = 3000
	ExpReturnNotResult    Code = 3001
	ExpResultTooManyArgs  Code = 3002
	ExpResultBadErrSlot   Code = 3003
	ExpCalleeNotIdent     Code = 3004
	ExpMissingTemplate    Code = 3005
	ExpArgNotCast         Code = 3006
	ExpRefNeedsLifetime   Code = 3007
	ExpMissingReturnType  Code = 3008

	// Driver / IO
	IOLoadFileError Code = 4001
	IOWriteError    Code = 4002
)

// String returns the canonical code label, e.g. "EXP3006".
func (c Code) String() string {
	switch {
	case c >= 1000 && c < 2000:
		return fmt.Sprintf("LEX%04d", uint16(c))
	case c >= 2000 && c < 3000:
		return fmt.Sprintf("SYN%04d", uint16(c))
	case c >= 3000 && c < 4000:
		return fmt.Sprintf("EXP%04d", uint16(c))
	case c >= 4000 && c < 5000:
		return fmt.Sprintf("IO%04d", uint16(c))
	default:
		return fmt.Sprintf("UNK%04d", uint16(c))
	}
}
