// Package nfa implements nondeterministic finite automata: the data
// structure, epsilon closure, simulation, and the Thompson construction
// from an AST.
package nfa

import (
	"fmt"
	"sort"
	"strings"
)

// Epsilon is the symbol of a transition that consumes no input.
const Epsilon rune = 0

// State is identified by its ID alone; the final flag is not part of
// identity. IDs are unique within one automaton.
type State struct {
	ID    int
	Final bool
}

func (s *State) String() string {
	if s.Final {
		return fmt.Sprintf("q%d(F)", s.ID)
	}
	return fmt.Sprintf("q%d", s.ID)
}

type Transition struct {
	From   *State
	Symbol rune // Epsilon for ε moves
	To     *State
}

func (t Transition) IsEpsilon() bool { return t.Symbol == Epsilon }

func (t Transition) String() string {
	sym := "ε"
	if !t.IsEpsilon() {
		sym = string(t.Symbol)
	}
	return fmt.Sprintf("%s --%s--> %s", t.From, sym, t.To)
}

// NFA owns its states and transitions. Transitions behave as a multiset:
// several transitions may share a (from, symbol) pair, which is exactly
// what makes the automaton nondeterministic. The alphabet is induced from
// the non-epsilon transitions added. Automata are immutable once their
// constructing algorithm returns.
type NFA struct {
	States      []*State
	Alphabet    map[rune]struct{}
	Transitions []Transition
	Start       *State
	Finals      map[*State]struct{}

	nextID int
}

func New() *NFA {
	return &NFA{
		Alphabet: make(map[rune]struct{}),
		Finals:   make(map[*State]struct{}),
	}
}

// NewState allocates the next state ID. The counter only ever increments.
func (n *NFA) NewState(final bool) *State {
	s := &State{ID: n.nextID, Final: final}
	n.nextID++
	n.States = append(n.States, s)
	if final {
		n.Finals[s] = struct{}{}
	}
	return s
}

func (n *NFA) AddTransition(from *State, symbol rune, to *State) {
	n.Transitions = append(n.Transitions, Transition{From: from, Symbol: symbol, To: to})
	if symbol != Epsilon {
		n.Alphabet[symbol] = struct{}{}
	}
}

func (n *NFA) AddEpsilon(from, to *State) {
	n.AddTransition(from, Epsilon, to)
}

// TransitionsFrom returns every transition leaving s on symbol
// (Epsilon for the ε moves).
func (n *NFA) TransitionsFrom(s *State, symbol rune) []Transition {
	var out []Transition
	for _, t := range n.Transitions {
		if t.From == s && t.Symbol == symbol {
			out = append(out, t)
		}
	}
	return out
}

// EpsilonClosure returns the set of states reachable from set using only
// epsilon transitions, including set itself. Worklist fixed point; the
// processing order does not affect the result.
func (n *NFA) EpsilonClosure(set map[*State]struct{}) map[*State]struct{} {
	closure := make(map[*State]struct{}, len(set))
	stack := make([]*State, 0, len(set))
	for s := range set {
		closure[s] = struct{}{}
		stack = append(stack, s)
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.TransitionsFrom(s, Epsilon) {
			if _, ok := closure[t.To]; !ok {
				closure[t.To] = struct{}{}
				stack = append(stack, t.To)
			}
		}
	}
	return closure
}

// Simulate reports whether the automaton accepts input. It tracks the set
// of current states, starting from the closure of the start state, and
// rejects as soon as the set goes empty. An automaton without a start
// state rejects everything, the empty string included.
func (n *NFA) Simulate(input string) bool {
	if n.Start == nil {
		return false
	}

	current := n.EpsilonClosure(map[*State]struct{}{n.Start: {}})

	for _, symbol := range input {
		next := make(map[*State]struct{})
		for s := range current {
			for _, t := range n.TransitionsFrom(s, symbol) {
				next[t.To] = struct{}{}
			}
		}
		current = n.EpsilonClosure(next)
		if len(current) == 0 {
			return false
		}
	}

	for s := range current {
		if _, ok := n.Finals[s]; ok {
			return true
		}
	}
	return false
}

// SortedAlphabet returns the alphabet in increasing rune order.
func (n *NFA) SortedAlphabet() []rune {
	out := make([]rune, 0, len(n.Alphabet))
	for r := range n.Alphabet {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (n *NFA) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "NFA with %d states\n", len(n.States))

	states := make([]*State, len(n.States))
	copy(states, n.States)
	sort.Slice(states, func(i, j int) bool { return states[i].ID < states[j].ID })
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.String()
	}
	fmt.Fprintf(&b, "states: {%s}\n", strings.Join(names, ", "))

	alpha := make([]string, 0, len(n.Alphabet))
	for _, r := range n.SortedAlphabet() {
		alpha = append(alpha, string(r))
	}
	fmt.Fprintf(&b, "alphabet: {%s}\n", strings.Join(alpha, ", "))
	fmt.Fprintf(&b, "start: %v\n", n.Start)

	trans := make([]Transition, len(n.Transitions))
	copy(trans, n.Transitions)
	sort.Slice(trans, func(i, j int) bool {
		a, c := trans[i], trans[j]
		if a.From.ID != c.From.ID {
			return a.From.ID < c.From.ID
		}
		if a.Symbol != c.Symbol {
			return a.Symbol < c.Symbol
		}
		return a.To.ID < c.To.ID
	})
	b.WriteString("transitions:\n")
	for _, t := range trans {
		fmt.Fprintf(&b, "  %s\n", t)
	}
	return b.String()
}
