package parser

import (
	"errors"
	"testing"

	"rexc/ast"
	"rexc/lexer"
)

func parse(t *testing.T, pattern string) ast.Node {
	t.Helper()
	tokens, err := lexer.Tokenize(pattern)
	if err != nil {
		t.Fatalf("tokenize %q: %v", pattern, err)
	}
	node, err := Parse(tokens)
	if err != nil {
		t.Fatalf("parse %q: %v", pattern, err)
	}
	return node
}

func symbol(t *testing.T, n ast.Node, want rune) {
	t.Helper()
	s, ok := n.(*ast.Symbol)
	if !ok {
		t.Fatalf("got %T (%s), want *ast.Symbol", n, n)
	}
	if s.Char != want {
		t.Fatalf("symbol %q, want %q", s.Char, want)
	}
}

func TestParseEmpty(t *testing.T) {
	if _, ok := parse(t, "").(*ast.Epsilon); !ok {
		t.Fatal("empty pattern should parse to Epsilon")
	}
}

func TestParseSingleSymbol(t *testing.T) {
	symbol(t, parse(t, "a"), 'a')
}

func TestParseUnion(t *testing.T) {
	u, ok := parse(t, "a|b").(*ast.Union)
	if !ok {
		t.Fatal("want Union at root")
	}
	symbol(t, u.Left, 'a')
	symbol(t, u.Right, 'b')
}

func TestParseConcat(t *testing.T) {
	c, ok := parse(t, "ab").(*ast.Concat)
	if !ok {
		t.Fatal("want Concat at root")
	}
	symbol(t, c.Left, 'a')
	symbol(t, c.Right, 'b')
}

func TestParseStar(t *testing.T) {
	s, ok := parse(t, "a*").(*ast.Star)
	if !ok {
		t.Fatal("want Star at root")
	}
	symbol(t, s.Operand, 'a')
}

func TestParseParentheses(t *testing.T) {
	symbol(t, parse(t, "(a)"), 'a')
	symbol(t, parse(t, "((a))"), 'a')
}

func TestPrecedenceStarOverConcat(t *testing.T) {
	// ab* is Concat(a, Star(b)), not Star(Concat(a, b))
	c, ok := parse(t, "ab*").(*ast.Concat)
	if !ok {
		t.Fatal("want Concat at root")
	}
	symbol(t, c.Left, 'a')
	s, ok := c.Right.(*ast.Star)
	if !ok {
		t.Fatalf("right: got %T, want *ast.Star", c.Right)
	}
	symbol(t, s.Operand, 'b')
}

func TestPrecedenceConcatOverUnion(t *testing.T) {
	// ab|c is Union(Concat(a, b), c), not Concat(a, Union(b, c))
	u, ok := parse(t, "ab|c").(*ast.Union)
	if !ok {
		t.Fatal("want Union at root")
	}
	c, ok := u.Left.(*ast.Concat)
	if !ok {
		t.Fatalf("left: got %T, want *ast.Concat", u.Left)
	}
	symbol(t, c.Left, 'a')
	symbol(t, c.Right, 'b')
	symbol(t, u.Right, 'c')
}

func TestUnionLeftAssociative(t *testing.T) {
	// a|b|c is Union(Union(a, b), c)
	u, ok := parse(t, "a|b|c").(*ast.Union)
	if !ok {
		t.Fatal("want Union at root")
	}
	inner, ok := u.Left.(*ast.Union)
	if !ok {
		t.Fatalf("left: got %T, want *ast.Union", u.Left)
	}
	symbol(t, inner.Left, 'a')
	symbol(t, inner.Right, 'b')
	symbol(t, u.Right, 'c')
}

func TestConcatLeftAssociative(t *testing.T) {
	// abc is Concat(Concat(a, b), c)
	c, ok := parse(t, "abc").(*ast.Concat)
	if !ok {
		t.Fatal("want Concat at root")
	}
	inner, ok := c.Left.(*ast.Concat)
	if !ok {
		t.Fatalf("left: got %T, want *ast.Concat", c.Left)
	}
	symbol(t, inner.Left, 'a')
	symbol(t, inner.Right, 'b')
	symbol(t, c.Right, 'c')
}

func TestParseComplex(t *testing.T) {
	// (a|b)*c is Concat(Star(Union(a, b)), c)
	c, ok := parse(t, "(a|b)*c").(*ast.Concat)
	if !ok {
		t.Fatal("want Concat at root")
	}
	symbol(t, c.Right, 'c')
	s, ok := c.Left.(*ast.Star)
	if !ok {
		t.Fatalf("left: got %T, want *ast.Star", c.Left)
	}
	u, ok := s.Operand.(*ast.Union)
	if !ok {
		t.Fatalf("star operand: got %T, want *ast.Union", s.Operand)
	}
	symbol(t, u.Left, 'a')
	symbol(t, u.Right, 'b')
}

func TestParseStarOnGroup(t *testing.T) {
	s, ok := parse(t, "(ab)*").(*ast.Star)
	if !ok {
		t.Fatal("want Star at root")
	}
	c, ok := s.Operand.(*ast.Concat)
	if !ok {
		t.Fatalf("operand: got %T, want *ast.Concat", s.Operand)
	}
	symbol(t, c.Left, 'a')
	symbol(t, c.Right, 'b')
}

func TestSyntaxErrors(t *testing.T) {
	cases := []struct {
		pattern string
		pos     int
	}{
		{"(", 1},  // unmatched ( detected at end of input
		{"a)", 1}, // stray ) after a complete parse
		{"*", 0},  // star without operand
		{"|", 0},  // union without left operand
		{"a|", 2}, // union without right operand
		{"|*", 0},
		{"(a", 2},
		{"a(b", 3},
		{"()", 1}, // empty group: ) where an atom is required
	}

	for _, tc := range cases {
		tokens, err := lexer.Tokenize(tc.pattern)
		if err != nil {
			t.Fatalf("tokenize %q: %v", tc.pattern, err)
		}
		_, err = Parse(tokens)
		if err == nil {
			t.Fatalf("pattern %q: want syntax error, got none", tc.pattern)
		}
		var synErr *SyntaxError
		if !errors.As(err, &synErr) {
			t.Fatalf("pattern %q: error %v is not a *SyntaxError", tc.pattern, err)
		}
		if synErr.Pos != tc.pos {
			t.Fatalf("pattern %q: error at position %d, want %d (%v)", tc.pattern, synErr.Pos, tc.pos, err)
		}
	}
}
