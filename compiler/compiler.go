// Package compiler ties the phases together: lexical analysis, parsing,
// Thompson construction, and on request determinization.
//
// Every detected problem — lexical, syntactic, or an internal construction
// defect — aborts the whole compile call. Nothing is recovered or retried;
// callers compiling many patterns handle errors per pattern and move on.
package compiler

import (
	"fmt"

	"rexc/ast"
	"rexc/dfa"
	"rexc/lexer"
	"rexc/nfa"
	"rexc/parser"
	"rexc/token"
)

// Compilation holds the artifacts of one successful compile call.
type Compilation struct {
	Pattern string
	Tokens  []token.Token
	AST     ast.Node
	NFA     *nfa.NFA

	dfa *dfa.DFA
}

// Compile turns a pattern into an NFA, keeping the intermediate artifacts
// around for inspection.
func Compile(pattern string) (*Compilation, error) {
	tokens, err := lexer.Tokenize(pattern)
	if err != nil {
		return nil, fmt.Errorf("lexical analysis: %w", err)
	}

	root, err := parser.Parse(tokens)
	if err != nil {
		return nil, fmt.Errorf("syntax analysis: %w", err)
	}

	automaton, err := nfa.NewThompson().Construct(root)
	if err != nil {
		return nil, fmt.Errorf("code generation: %w", err)
	}

	return &Compilation{
		Pattern: pattern,
		Tokens:  tokens,
		AST:     root,
		NFA:     automaton,
	}, nil
}

func MustCompile(pattern string) *Compilation {
	c, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return c
}

// Determinize runs the subset construction on first request and caches
// the result for the lifetime of the Compilation.
func (c *Compilation) Determinize() *dfa.DFA {
	if c.dfa == nil {
		c.dfa = dfa.FromNFA(c.NFA)
	}
	return c.dfa
}

// TestString compiles pattern and simulates input, on the DFA when useDFA
// is set and on the NFA otherwise.
func TestString(pattern, input string, useDFA bool) (bool, error) {
	c, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	if useDFA {
		return c.Determinize().Simulate(input), nil
	}
	return c.NFA.Simulate(input), nil
}

// NFAStats aggregates the size of a constructed NFA.
type NFAStats struct {
	States             int
	Transitions        int
	EpsilonTransitions int
	AlphabetSize       int
	FinalStates        int
}

// DFAStats aggregates the size of the determinized automaton.
// ReductionRatio is NFA states per DFA state.
type DFAStats struct {
	States         int
	Transitions    int
	AlphabetSize   int
	FinalStates    int
	ReductionRatio float64
}

type Report struct {
	NFA NFAStats
	DFA *DFAStats // nil unless determinization was requested
}

// Analyze measures the automata of this compilation.
func (c *Compilation) Analyze(includeDFA bool) Report {
	epsilons := 0
	for _, t := range c.NFA.Transitions {
		if t.IsEpsilon() {
			epsilons++
		}
	}

	report := Report{
		NFA: NFAStats{
			States:             len(c.NFA.States),
			Transitions:        len(c.NFA.Transitions),
			EpsilonTransitions: epsilons,
			AlphabetSize:       len(c.NFA.Alphabet),
			FinalStates:        len(c.NFA.Finals),
		},
	}

	if includeDFA {
		d := c.Determinize()
		stats := DFAStats{
			States:       len(d.States),
			Transitions:  len(d.Transitions),
			AlphabetSize: len(d.Alphabet),
			FinalStates:  len(d.Finals),
		}
		if stats.States > 0 {
			stats.ReductionRatio = float64(report.NFA.States) / float64(stats.States)
		}
		report.DFA = &stats
	}

	return report
}
