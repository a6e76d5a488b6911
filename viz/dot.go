// Package viz renders automata for humans: Graphviz DOT, a plain-text
// transition table, and a step-by-step simulation trace. It is pure
// presentation over the data the core produces.
package viz

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"rexc/dfa"
	"rexc/nfa"
)

// WriteNFADot prints a Graphviz representation of the NFA. Parallel
// transitions between the same pair of states share one edge with a
// combined label.
func WriteNFADot(w io.Writer, n *nfa.NFA, title string) {
	fmt.Fprintf(w, "digraph %q {\n", title)
	fmt.Fprintln(w, "    rankdir=LR;")
	if title != "" {
		fmt.Fprintf(w, "    label=%q;\n", title)
		fmt.Fprintln(w, "    labelloc=\"t\";")
	}

	for _, s := range sortedNFAStates(n) {
		shape := "circle"
		if s.Final {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    q%d [shape=%s];\n", s.ID, shape)
	}
	if n.Start != nil {
		fmt.Fprintln(w, "    _start [shape=point];")
		fmt.Fprintf(w, "    _start -> q%d;\n", n.Start.ID)
	}

	type edge struct{ from, to int }
	groups := make(map[edge][]string)
	for _, t := range n.Transitions {
		sym := "ε"
		if !t.IsEpsilon() {
			sym = string(t.Symbol)
		}
		e := edge{t.From.ID, t.To.ID}
		groups[e] = append(groups[e], sym)
	}
	edges := make([]edge, 0, len(groups))
	for e := range groups {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		return edges[i].to < edges[j].to
	})
	for _, e := range edges {
		symbols := groups[e]
		sort.Strings(symbols)
		fmt.Fprintf(w, "    q%d -> q%d [label=\"%s\"];\n", e.from, e.to, strings.Join(symbols, ", "))
	}

	fmt.Fprintln(w, "}")
}

// WriteDFADot prints a Graphviz representation of the DFA. Each node shows
// the set of NFA state IDs the DFA state stands for.
func WriteDFADot(w io.Writer, d *dfa.DFA, title string) {
	fmt.Fprintf(w, "digraph %q {\n", title)
	fmt.Fprintln(w, "    rankdir=LR;")
	if title != "" {
		fmt.Fprintf(w, "    label=%q;\n", title)
		fmt.Fprintln(w, "    labelloc=\"t\";")
	}

	states := make([]*dfa.State, len(d.States))
	copy(states, d.States)
	sort.Slice(states, func(i, j int) bool { return states[i].ID < states[j].ID })
	for _, s := range states {
		shape := "circle"
		if s.Final {
			shape = "doublecircle"
		}
		ids := make([]string, len(s.Label))
		for i, id := range s.Label {
			ids[i] = fmt.Sprint(id)
		}
		fmt.Fprintf(w, "    q%d [shape=%s, label=\"q%d\\n{%s}\"];\n", s.ID, shape, s.ID, strings.Join(ids, ","))
	}
	if d.Start != nil {
		fmt.Fprintln(w, "    _start [shape=point];")
		fmt.Fprintf(w, "    _start -> q%d;\n", d.Start.ID)
	}

	type row struct {
		from, to int
		symbol   rune
	}
	rows := make([]row, 0, len(d.Transitions))
	for key, to := range d.Transitions {
		rows = append(rows, row{key.From.ID, to.ID, key.Symbol})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].from != rows[j].from {
			return rows[i].from < rows[j].from
		}
		return rows[i].symbol < rows[j].symbol
	})
	for _, r := range rows {
		fmt.Fprintf(w, "    q%d -> q%d [label=\"%c\"];\n", r.from, r.to, r.symbol)
	}

	fmt.Fprintln(w, "}")
}

// RenderPNG pipes DOT source through the Graphviz dot binary.
func RenderPNG(dot []byte, outFile string) error {
	cmd := exec.Command("dot", "-Tpng", "-o", outFile)
	cmd.Stdin = bytes.NewReader(dot)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running dot: %w", err)
	}
	return nil
}

func sortedNFAStates(n *nfa.NFA) []*nfa.State {
	states := make([]*nfa.State, len(n.States))
	copy(states, n.States)
	sort.Slice(states, func(i, j int) bool { return states[i].ID < states[j].ID })
	return states
}
