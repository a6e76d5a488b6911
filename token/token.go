// Package token defines the token stream shared by the lexer and parser.
package token

import "fmt"

type Type int

const (
	SYMBOL Type = iota // alphanumeric literal
	UNION              // |
	STAR               // *
	LPAREN             // (
	RPAREN             // )
	EOF
)

var names = map[Type]string{
	SYMBOL: "SYMBOL",
	UNION:  "UNION",
	STAR:   "STAR",
	LPAREN: "LPAREN",
	RPAREN: "RPAREN",
	EOF:    "EOF",
}

func (t Type) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Token is a classified piece of the input pattern. Pos is the byte offset
// of the first character in the original string; EOF carries the offset one
// past the end and an empty Text.
type Token struct {
	Type Type
	Text string
	Pos  int
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q, pos=%d)", t.Type, t.Text, t.Pos)
}
