package parser

import (
	"slices"

	"github.com/ZXY595/fnerror/internal/ast"
	"github.com/ZXY595/fnerror/internal/diag"
	"github.com/ZXY595/fnerror/internal/lexer"
	"github.com/ZXY595/fnerror/internal/source"
	"github.com/ZXY595/fnerror/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is spent.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser holds the per-file parsing state.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span of the last consumed token, for diagnostics
}

// ParseFile is the entry point for parsing one file. Requires an already
// constructed lexer over a source.File.
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.Files.New(lx.EmptySpan()),
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseItems()
	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		File: p.file,
		Bag:  bag,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

// parseItems is the top-level loop: parseItem until EOF.
func (p *Parser) parseItems() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) {
		itemID, ok := p.parseItem()
		if !ok {
			p.resyncTop()
		} else {
			p.arenas.PushItem(p.file, itemID)
		}
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.lx.Peek().Span)
}

// parseItem distinguishes function items, which get a full parse, from every
// other top-level construct, which is kept as an opaque source range.
func (p *Parser) parseItem() (ast.ItemID, bool) {
	start := p.lx.Peek().Span

	attrs, ok := p.parseOuterAttrs()
	if !ok {
		return ast.NoItemID, false
	}

	pub := false
	if p.at(token.KwPub) {
		p.advance()
		pub = true
	}

	if p.at(token.KwFn) {
		return p.parseFnItem(start, attrs, pub)
	}

	if p.at(token.EOF) {
		p.err(diag.SynUnexpectedTopLevel, "expected an item")
		return ast.NoItemID, false
	}

	return p.parseVerbatimItem(start)
}

// resyncTop recovers after a top-level error: skip to a `;`, the start of the
// next plausible item, or EOF.
func (p *Parser) resyncTop() {
	stopTokens := []token.Kind{token.Semicolon, token.KwFn, token.KwPub, token.Pound}
	p.resyncUntil(stopTokens...)
	if p.at(token.Semicolon) {
		p.advance()
	}
}

func (p *Parser) resyncUntil(kinds ...token.Kind) {
	for !p.at(token.EOF) && !p.atOr(kinds...) {
		p.advance()
	}
}
