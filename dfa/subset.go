package dfa

import (
	"fmt"
	"sort"

	"rexc/nfa"
)

// SubsetConstructor determinizes an NFA. Each reachable epsilon-closed set
// of NFA states becomes one DFA state; a worklist expands sets symbol by
// symbol until no new set appears. Termination is bounded by the power set
// of the NFA's states, and every label is processed at most once.
type SubsetConstructor struct {
	stateMap map[string]*State
	dfa      *DFA
}

func NewSubset() *SubsetConstructor {
	return &SubsetConstructor{}
}

// FromNFA is a convenience wrapper over NewSubset().Construct(n).
func FromNFA(n *nfa.NFA) *DFA {
	return NewSubset().Construct(n)
}

// Construct runs the subset construction. An NFA without a start state
// yields an empty DFA: no states, no transitions, no start.
func (c *SubsetConstructor) Construct(n *nfa.NFA) *DFA {
	c.dfa = New()
	c.stateMap = make(map[string]*State)

	if n.Start == nil {
		return c.dfa
	}

	for r := range n.Alphabet {
		c.dfa.Alphabet[r] = struct{}{}
	}
	alphabet := n.SortedAlphabet()

	initial := n.EpsilonClosure(map[*nfa.State]struct{}{n.Start: {}})
	c.dfa.Start = c.newState(n, initial)

	queue := []map[*nfa.State]struct{}{initial}
	processed := make(map[string]bool)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		key := labelKey(label(current))
		if processed[key] {
			continue
		}
		processed[key] = true
		from := c.stateMap[key]

		for _, symbol := range alphabet {
			next := make(map[*nfa.State]struct{})
			for s := range current {
				for _, t := range n.TransitionsFrom(s, symbol) {
					next[t.To] = struct{}{}
				}
			}
			if len(next) == 0 {
				// no move on this symbol, implicit reject
				continue
			}

			closure := n.EpsilonClosure(next)
			k := labelKey(label(closure))
			to, ok := c.stateMap[k]
			if !ok {
				to = c.newState(n, closure)
				queue = append(queue, closure)
			}
			c.dfa.AddTransition(from, symbol, to)
		}
	}

	return c.dfa
}

// newState creates the DFA state for an epsilon-closed NFA state set,
// final iff the set intersects the NFA's final states, and records it
// under its label key.
func (c *SubsetConstructor) newState(n *nfa.NFA, set map[*nfa.State]struct{}) *State {
	lbl := label(set)
	final := false
	for s := range set {
		if _, ok := n.Finals[s]; ok {
			final = true
			break
		}
	}
	st := c.dfa.NewState(lbl, final)
	c.stateMap[labelKey(lbl)] = st
	return st
}

func label(set map[*nfa.State]struct{}) []int {
	ids := make([]int, 0, len(set))
	for s := range set {
		ids = append(ids, s.ID)
	}
	sort.Ints(ids)
	return ids
}

func labelKey(ids []int) string {
	return fmt.Sprint(ids)
}
