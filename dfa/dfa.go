// Package dfa implements deterministic finite automata and the subset
// construction that produces them from an NFA.
package dfa

import (
	"fmt"
	"sort"
	"strings"

	"rexc/nfa"
)

// State represents one reachable set of NFA states. Label holds the sorted
// IDs of that set; two DFA states are the same state exactly when their
// labels are equal. That structural equality is what makes determinization
// terminate.
type State struct {
	ID    int
	Label []int
	Final bool
}

func (s *State) String() string {
	ids := make([]string, len(s.Label))
	for i, id := range s.Label {
		ids[i] = fmt.Sprint(id)
	}
	marker := ""
	if s.Final {
		marker = "(F)"
	}
	return fmt.Sprintf("q%d{%s}%s", s.ID, strings.Join(ids, ","), marker)
}

// Key addresses one slot of the transition function.
type Key struct {
	From   *State
	Symbol rune
}

// DFA stores its transition function as a map keyed by (state, symbol);
// a missing entry is an implicit reject. The map can never send one key to
// two targets, which is the determinism invariant.
type DFA struct {
	States      []*State
	Alphabet    map[rune]struct{}
	Transitions map[Key]*State
	Start       *State
	Finals      map[*State]struct{}

	nextID int
}

func New() *DFA {
	return &DFA{
		Alphabet:    make(map[rune]struct{}),
		Transitions: make(map[Key]*State),
		Finals:      make(map[*State]struct{}),
	}
}

func (d *DFA) NewState(label []int, final bool) *State {
	s := &State{ID: d.nextID, Label: label, Final: final}
	d.nextID++
	d.States = append(d.States, s)
	if final {
		d.Finals[s] = struct{}{}
	}
	return s
}

func (d *DFA) AddTransition(from *State, symbol rune, to *State) {
	d.Transitions[Key{From: from, Symbol: symbol}] = to
	d.Alphabet[symbol] = struct{}{}
}

// Step looks up the transition for (from, symbol). The second result is
// false when no move exists.
func (d *DFA) Step(from *State, symbol rune) (*State, bool) {
	to, ok := d.Transitions[Key{From: from, Symbol: symbol}]
	return to, ok
}

// Simulate walks the transition table one symbol at a time, rejecting
// immediately on a missing entry. An automaton without a start state
// rejects everything.
func (d *DFA) Simulate(input string) bool {
	if d.Start == nil {
		return false
	}

	current := d.Start
	for _, symbol := range input {
		next, ok := d.Step(current, symbol)
		if !ok {
			return false
		}
		current = next
	}

	_, ok := d.Finals[current]
	return ok
}

// SortedAlphabet returns the alphabet in increasing rune order.
func (d *DFA) SortedAlphabet() []rune {
	out := make([]rune, 0, len(d.Alphabet))
	for r := range d.Alphabet {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ToNFA reinterprets the transition table as a trivially deterministic
// NFA: same states, same moves, no epsilon transitions. Determinizing the
// result again reproduces the same number of reachable states.
func (d *DFA) ToNFA() *nfa.NFA {
	n := nfa.New()
	m := make(map[*State]*nfa.State, len(d.States))
	for _, s := range d.States {
		m[s] = n.NewState(s.Final)
	}
	if d.Start != nil {
		n.Start = m[d.Start]
	}
	for key, to := range d.Transitions {
		n.AddTransition(m[key.From], key.Symbol, m[to])
	}
	return n
}

func (d *DFA) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "DFA with %d states\n", len(d.States))

	states := make([]*State, len(d.States))
	copy(states, d.States)
	sort.Slice(states, func(i, j int) bool { return states[i].ID < states[j].ID })
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.String()
	}
	fmt.Fprintf(&b, "states: {%s}\n", strings.Join(names, ", "))

	alpha := make([]string, 0, len(d.Alphabet))
	for _, r := range d.SortedAlphabet() {
		alpha = append(alpha, string(r))
	}
	fmt.Fprintf(&b, "alphabet: {%s}\n", strings.Join(alpha, ", "))
	fmt.Fprintf(&b, "start: %v\n", d.Start)

	type row struct {
		from   *State
		symbol rune
		to     *State
	}
	rows := make([]row, 0, len(d.Transitions))
	for key, to := range d.Transitions {
		rows = append(rows, row{key.From, key.Symbol, to})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].from.ID != rows[j].from.ID {
			return rows[i].from.ID < rows[j].from.ID
		}
		return rows[i].symbol < rows[j].symbol
	})
	b.WriteString("transitions:\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "  %s --%s--> %s\n", r.from, string(r.symbol), r.to)
	}
	return b.String()
}
