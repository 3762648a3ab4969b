// Package token defines the token kinds produced by the lexer for the
// Rust-flavored subset the expander accepts, plus leading trivia.
package token
