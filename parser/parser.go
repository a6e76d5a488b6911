// Package parser builds an AST from the lexer's token stream.
//
// Grammar, highest precedence first (* binds tighter than concatenation,
// which binds tighter than |; union and concatenation are left-associative):
//
//	regex  → union
//	union  → concat ('|' concat)*
//	concat → kleene (kleene)*
//	kleene → atom ('*')?
//	atom   → SYMBOL | '(' regex ')'
//
// The parser is LL(1): the FIRST sets of the alternatives are disjoint, so
// one token of lookahead suffices and no backtracking is needed.
package parser

import (
	"fmt"
	"unicode/utf8"

	"rexc/ast"
	"rexc/token"
)

// SyntaxError reports an unexpected token at a grammar decision point,
// with the byte position where the mismatch was detected.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

type Parser struct {
	tokens []token.Token
	pos    int
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse is a convenience wrapper over New(tokens).Parse().
func Parse(tokens []token.Token) (ast.Node, error) {
	return New(tokens).Parse()
}

func (p *Parser) current() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	// The lexer terminates every stream with EOF, so this is only reached
	// on a hand-built token slice.
	return token.Token{Type: token.EOF, Pos: -1}
}

func (p *Parser) advance() {
	p.pos++
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return &SyntaxError{Pos: p.current().Pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) expect(typ token.Type) (token.Token, error) {
	tok := p.current()
	if tok.Type != typ {
		if tok.Type == token.EOF {
			return tok, p.errorf("expected %s, found end of input", typ)
		}
		return tok, p.errorf("expected %s, found %s", typ, tok.Type)
	}
	p.advance()
	return tok, nil
}

// Parse consumes the token stream and returns the AST root. An empty
// stream (or one that starts with EOF) parses to Epsilon. After the
// top-level union the parser must sit exactly on the EOF token; anything
// else is a syntax error.
func (p *Parser) Parse() (ast.Node, error) {
	if len(p.tokens) == 0 || p.tokens[0].Type == token.EOF {
		return &ast.Epsilon{}, nil
	}

	node, err := p.parseUnion()
	if err != nil {
		return nil, err
	}

	if tok := p.current(); tok.Type != token.EOF {
		return nil, p.errorf("unexpected %s after end of expression", tok.Type)
	}
	return node, nil
}

// union → concat ('|' concat)*
func (p *Parser) parseUnion() (ast.Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}

	for p.current().Type == token.UNION {
		p.advance()
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = &ast.Union{Left: left, Right: right}
	}
	return left, nil
}

// concat → kleene (kleene)*
//
// Concatenation is implicit juxtaposition: keep going while the next token
// can start a kleene (FIRST = {SYMBOL, LPAREN}).
func (p *Parser) parseConcat() (ast.Node, error) {
	left, err := p.parseKleene()
	if err != nil {
		return nil, err
	}

	for t := p.current().Type; t == token.SYMBOL || t == token.LPAREN; t = p.current().Type {
		right, err := p.parseKleene()
		if err != nil {
			return nil, err
		}
		left = &ast.Concat{Left: left, Right: right}
	}
	return left, nil
}

// kleene → atom ('*')?
func (p *Parser) parseKleene() (ast.Node, error) {
	node, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	if p.current().Type == token.STAR {
		p.advance()
		node = &ast.Star{Operand: node}
	}
	return node, nil
}

// atom → SYMBOL | '(' regex ')'
//
// Operators without a left operand (leading |, leading *) end up here and
// fail, since neither is a SYMBOL or '('.
func (p *Parser) parseAtom() (ast.Node, error) {
	switch tok := p.current(); tok.Type {
	case token.SYMBOL:
		p.advance()
		r, _ := utf8.DecodeRuneInString(tok.Text)
		return &ast.Symbol{Char: r}, nil

	case token.LPAREN:
		p.advance()
		node, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return node, nil

	case token.EOF:
		return nil, p.errorf("expected symbol or '(', found end of input")

	default:
		return nil, p.errorf("expected symbol or '(', found %s", tok.Type)
	}
}
