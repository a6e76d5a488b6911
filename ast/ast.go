// Package ast defines the syntax tree produced by the parser.
//
// A tree is built once and never mutated. Later stages traverse it through
// the Visitor interface, one method per node kind.
package ast

import (
	"fmt"
	"strings"
)

type Node interface {
	Accept(v Visitor)
	String() string
}

type Visitor interface {
	VisitSymbol(n *Symbol)
	VisitUnion(n *Union)
	VisitConcat(n *Concat)
	VisitStar(n *Star)
	VisitEpsilon(n *Epsilon)
}

// Symbol matches exactly one occurrence of Char.
type Symbol struct {
	Char rune
}

func (n *Symbol) Accept(v Visitor) { v.VisitSymbol(n) }
func (n *Symbol) String() string   { return fmt.Sprintf("Symbol(%c)", n.Char) }

// Union matches anything Left or Right matches.
type Union struct {
	Left, Right Node
}

func (n *Union) Accept(v Visitor) { v.VisitUnion(n) }
func (n *Union) String() string   { return fmt.Sprintf("Union(%s, %s)", n.Left, n.Right) }

// Concat matches Left followed immediately by Right.
type Concat struct {
	Left, Right Node
}

func (n *Concat) Accept(v Visitor) { v.VisitConcat(n) }
func (n *Concat) String() string   { return fmt.Sprintf("Concat(%s, %s)", n.Left, n.Right) }

// Star matches zero or more repetitions of Operand.
type Star struct {
	Operand Node
}

func (n *Star) Accept(v Visitor) { v.VisitStar(n) }
func (n *Star) String() string   { return fmt.Sprintf("Star(%s)", n.Operand) }

// Epsilon matches only the empty string. The parser produces it for an
// empty input pattern.
type Epsilon struct{}

func (n *Epsilon) Accept(v Visitor) { v.VisitEpsilon(n) }
func (n *Epsilon) String() string   { return "Epsilon" }

// Dump renders the tree one node per line, indented by depth.
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func dump(b *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch t := n.(type) {
	case *Symbol:
		fmt.Fprintf(b, "%sSymbol: %q\n", indent, t.Char)
	case *Union:
		fmt.Fprintf(b, "%sUnion:\n", indent)
		dump(b, t.Left, depth+1)
		dump(b, t.Right, depth+1)
	case *Concat:
		fmt.Fprintf(b, "%sConcat:\n", indent)
		dump(b, t.Left, depth+1)
		dump(b, t.Right, depth+1)
	case *Star:
		fmt.Fprintf(b, "%sStar:\n", indent)
		dump(b, t.Operand, depth+1)
	case *Epsilon:
		fmt.Fprintf(b, "%sEpsilon\n", indent)
	}
}
