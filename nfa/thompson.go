package nfa

import (
	"fmt"

	"rexc/ast"
)

// ThompsonConstructor compiles an AST into an NFA bottom-up: each visit
// pushes the automaton for its subtree onto a work stack, composite nodes
// pop their operands and push the combined result. Every composite case
// copies its operands into freshly numbered states, so the produced
// automaton is self-contained and has exactly one start state.
type ThompsonConstructor struct {
	stack []*NFA
}

func NewThompson() *ThompsonConstructor {
	return &ThompsonConstructor{}
}

// Construct runs the post-order traversal and returns the single finished
// automaton. A stack that does not hold exactly one automaton afterwards
// means the AST→NFA mapping itself is broken, not the user's input.
func (c *ThompsonConstructor) Construct(root ast.Node) (*NFA, error) {
	c.stack = nil
	root.Accept(c)

	if len(c.stack) != 1 {
		return nil, fmt.Errorf("thompson construction: work stack holds %d automata, want exactly 1", len(c.stack))
	}
	return c.stack[0], nil
}

func (c *ThompsonConstructor) push(n *NFA) {
	c.stack = append(c.stack, n)
}

func (c *ThompsonConstructor) pop() *NFA {
	n := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return n
}

// merge copies src's states and transitions into dst under fresh IDs and
// returns the old→new mapping. Final flags carry over only when keepFinals
// is set; union and star re-route acceptance through a new final state.
func merge(dst, src *NFA, keepFinals bool) map[*State]*State {
	m := make(map[*State]*State, len(src.States))
	for _, s := range src.States {
		m[s] = dst.NewState(keepFinals && s.Final)
	}
	for _, t := range src.Transitions {
		dst.AddTransition(m[t.From], t.Symbol, m[t.To])
	}
	return m
}

// VisitSymbol: start --c--> final.
func (c *ThompsonConstructor) VisitSymbol(node *ast.Symbol) {
	n := New()
	start := n.NewState(false)
	final := n.NewState(true)
	n.Start = start
	n.AddTransition(start, node.Char, final)
	c.push(n)
}

// VisitEpsilon: a single state, both start and final.
func (c *ThompsonConstructor) VisitEpsilon(node *ast.Epsilon) {
	n := New()
	n.Start = n.NewState(true)
	c.push(n)
}

// VisitUnion: copies of both operands, a new start with ε to each operand
// start, and a single new final fed by ε from every operand final.
func (c *ThompsonConstructor) VisitUnion(node *ast.Union) {
	node.Right.Accept(c)
	node.Left.Accept(c)
	left := c.pop()
	right := c.pop()

	n := New()
	lm := merge(n, left, false)
	rm := merge(n, right, false)

	start := n.NewState(false)
	final := n.NewState(true)
	n.Start = start

	n.AddEpsilon(start, lm[left.Start])
	n.AddEpsilon(start, rm[right.Start])
	for s := range left.Finals {
		n.AddEpsilon(lm[s], final)
	}
	for s := range right.Finals {
		n.AddEpsilon(rm[s], final)
	}
	c.push(n)
}

// VisitConcat: copy of the left operand wired by ε from each of its finals
// into the copy of the right operand; the right copy keeps its finals.
func (c *ThompsonConstructor) VisitConcat(node *ast.Concat) {
	node.Left.Accept(c)
	node.Right.Accept(c)
	right := c.pop()
	left := c.pop()

	n := New()
	lm := merge(n, left, false)
	rm := merge(n, right, true)

	n.Start = lm[left.Start]
	for s := range left.Finals {
		n.AddEpsilon(lm[s], rm[right.Start])
	}
	c.push(n)
}

// VisitStar: copy of the operand between a new start and a new final, both
// accepting (the start accepts so the empty string needs no traversal);
// ε edges allow skipping the operand entirely and looping back into it.
func (c *ThompsonConstructor) VisitStar(node *ast.Star) {
	node.Operand.Accept(c)
	op := c.pop()

	n := New()
	m := merge(n, op, false)

	start := n.NewState(true)
	final := n.NewState(true)
	n.Start = start

	n.AddEpsilon(start, m[op.Start])
	n.AddEpsilon(start, final)
	for s := range op.Finals {
		n.AddEpsilon(m[s], final)
		n.AddEpsilon(m[s], m[op.Start])
	}
	c.push(n)
}
