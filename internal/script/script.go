// Package script parses and runs batch test scripts: files of patterns,
// each with strings the pattern must accept or reject.
//
//	pattern "(a|b)*c" {
//	    accept "c"
//	    accept "abc"
//	    reject "ab"
//	}
//
// Each pattern compiles independently; a compile error fails that block
// alone and the run continues with the next one.
package script

import (
	"github.com/alecthomas/participle/v2"

	"rexc/compiler"
)

type Suite struct {
	Blocks []*Block `parser:"@@*"`
}

type Block struct {
	Pattern string  `parser:"'pattern' @String"`
	Cases   []*Case `parser:"'{' @@* '}'"`
}

type Case struct {
	Verdict string `parser:"@('accept'|'reject')"`
	Input   string `parser:"@String"`
}

var scriptParser = participle.MustBuild[Suite](participle.Unquote("String"))

func Parse(data string) (*Suite, error) {
	return scriptParser.ParseString("script", data)
}

// Failure is one case whose simulation verdict disagreed with the script.
type Failure struct {
	Input string
	Want  bool
	Got   bool
}

// Result is the outcome of one pattern block. Err is set when the pattern
// itself failed to compile; its cases are then not run.
type Result struct {
	Pattern  string
	Cases    int
	Err      error
	Failures []Failure
}

// Run compiles every block's pattern and checks its cases, simulating on
// the DFA when useDFA is set and on the NFA otherwise.
func (s *Suite) Run(useDFA bool) []Result {
	results := make([]Result, 0, len(s.Blocks))

	for _, b := range s.Blocks {
		res := Result{Pattern: b.Pattern, Cases: len(b.Cases)}

		c, err := compiler.Compile(b.Pattern)
		if err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}

		simulate := c.NFA.Simulate
		if useDFA {
			simulate = c.Determinize().Simulate
		}

		for _, tc := range b.Cases {
			want := tc.Verdict == "accept"
			got := simulate(tc.Input)
			if got != want {
				res.Failures = append(res.Failures, Failure{Input: tc.Input, Want: want, Got: got})
			}
		}
		results = append(results, res)
	}

	return results
}
