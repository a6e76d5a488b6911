// Package lexer turns a regular-expression string into a token stream.
//
// Recognized tokens: alphanumeric SYMBOLs, the operators | and *, and
// parentheses. Whitespace is skipped. Any other character is a lexical
// error reported with its byte position.
package lexer

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"rexc/token"
)

// Error is a lexical error at a byte position in the input pattern.
type Error struct {
	Pos  int
	Char rune
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexical error at position %d: invalid character %q", e.Pos, e.Char)
}

var machine = newMachine()

func newMachine() *lexmachine.Lexer {
	m := lexmachine.NewLexer()
	m.Add([]byte(`[ \t\n\r]+`), skip)
	m.Add([]byte(`[a-zA-Z0-9]`), tokAction(token.SYMBOL))
	m.Add([]byte(`[|]`), tokAction(token.UNION))
	m.Add([]byte(`[*]`), tokAction(token.STAR))
	m.Add([]byte(`[(]`), tokAction(token.LPAREN))
	m.Add([]byte(`[)]`), tokAction(token.RPAREN))
	if err := m.Compile(); err != nil {
		panic(fmt.Sprintf("lexer: compiling token patterns: %v", err))
	}
	return m
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokAction(typ token.Type) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return token.Token{Type: typ, Text: string(m.Bytes), Pos: m.TC}, nil
	}
}

// Tokenize scans the whole pattern and returns its tokens, always
// terminated by exactly one EOF token positioned one past the input.
func Tokenize(pattern string) ([]token.Token, error) {
	scanner, err := machine.Scanner([]byte(pattern))
	if err != nil {
		return nil, err
	}

	var tokens []token.Token
	for {
		tok, err, eof := scanner.Next()
		if eof {
			break
		}
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				pos := ui.StartTC
				ch := rune(pattern[pos])
				return nil, &Error{Pos: pos, Char: ch}
			}
			return nil, err
		}
		tokens = append(tokens, tok.(token.Token))
	}

	tokens = append(tokens, token.Token{Type: token.EOF, Text: "", Pos: len(pattern)})
	return tokens, nil
}
