package viz

import (
	"fmt"
	"sort"
	"strings"

	"rexc/nfa"
)

// TransitionTable renders the NFA's transition function as text, one row
// per state with an ε column followed by one column per alphabet symbol.
func TransitionTable(n *nfa.NFA) string {
	symbols := n.SortedAlphabet()

	var b strings.Builder
	b.WriteString("state\tε")
	for _, r := range symbols {
		fmt.Fprintf(&b, "\t%c", r)
	}
	b.WriteByte('\n')

	for _, s := range sortedNFAStates(n) {
		b.WriteString(s.String())
		b.WriteByte('\t')
		b.WriteString(targetCell(n, s, nfa.Epsilon))
		for _, r := range symbols {
			b.WriteByte('\t')
			b.WriteString(targetCell(n, s, r))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func targetCell(n *nfa.NFA, s *nfa.State, symbol rune) string {
	var ids []int
	for _, t := range n.TransitionsFrom(s, symbol) {
		ids = append(ids, t.To.ID)
	}
	if len(ids) == 0 {
		return "-"
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Trace narrates one NFA simulation: the start closure, the state set
// after each consumed symbol, and the verdict.
func Trace(n *nfa.NFA, input string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "input %q\n", input)

	if n.Start == nil {
		b.WriteString("no start state: reject\n")
		return b.String()
	}

	current := n.EpsilonClosure(map[*nfa.State]struct{}{n.Start: {}})
	fmt.Fprintf(&b, "start: %s\n", setString(current))

	for i, symbol := range input {
		next := make(map[*nfa.State]struct{})
		for s := range current {
			for _, t := range n.TransitionsFrom(s, symbol) {
				next[t.To] = struct{}{}
			}
		}
		current = n.EpsilonClosure(next)
		fmt.Fprintf(&b, "read %q at %d: %s\n", symbol, i, setString(current))
		if len(current) == 0 {
			b.WriteString("reject: no states remain\n")
			return b.String()
		}
	}

	for s := range current {
		if _, ok := n.Finals[s]; ok {
			b.WriteString("accept\n")
			return b.String()
		}
	}
	b.WriteString("reject: no final state reached\n")
	return b.String()
}

func setString(set map[*nfa.State]struct{}) string {
	if len(set) == 0 {
		return "{}"
	}
	ids := make([]int, 0, len(set))
	for s := range set {
		ids = append(ids, s.ID)
	}
	sort.Ints(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("q%d", id)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
