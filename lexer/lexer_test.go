package lexer

import (
	"errors"
	"testing"

	"rexc/token"
)

func TestTokenizeKinds(t *testing.T) {
	tokens, err := Tokenize("a(b|c)*1")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}

	want := []token.Type{
		token.SYMBOL, token.LPAREN, token.SYMBOL, token.UNION,
		token.SYMBOL, token.RPAREN, token.STAR, token.SYMBOL, token.EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, typ := range want {
		if tokens[i].Type != typ {
			t.Fatalf("token %d: got %s, want %s", i, tokens[i].Type, typ)
		}
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := Tokenize("a|b")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}

	wantPos := []int{0, 1, 2, 3}
	wantText := []string{"a", "|", "b", ""}
	for i, tok := range tokens {
		if tok.Pos != wantPos[i] || tok.Text != wantText[i] {
			t.Fatalf("token %d: got (%q, pos=%d), want (%q, pos=%d)",
				i, tok.Text, tok.Pos, wantText[i], wantPos[i])
		}
	}
}

func TestTokenizeSkipsWhitespace(t *testing.T) {
	tokens, err := Tokenize("a b\tc")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(tokens) != 4 {
		t.Fatalf("got %d tokens, want 4: %v", len(tokens), tokens)
	}
	if tokens[0].Pos != 0 || tokens[1].Pos != 2 || tokens[2].Pos != 4 {
		t.Fatalf("unexpected positions: %v", tokens)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	tokens, err := Tokenize("")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Type != token.EOF || tokens[0].Pos != 0 {
		t.Fatalf("got %v, want single EOF at position 0", tokens)
	}
}

func TestTokenizeInvalidCharacter(t *testing.T) {
	for _, pattern := range []string{"a+b", "a?", "a[b", "a#"} {
		_, err := Tokenize(pattern)
		if err == nil {
			t.Fatalf("pattern %q: want lexical error, got none", pattern)
		}
		var lexErr *Error
		if !errors.As(err, &lexErr) {
			t.Fatalf("pattern %q: error %v is not a *lexer.Error", pattern, err)
		}
		if lexErr.Pos != 1 {
			t.Fatalf("pattern %q: error position %d, want 1", pattern, lexErr.Pos)
		}
	}
}
