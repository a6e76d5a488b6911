// Command rexc compiles a regular expression into finite automata, prints
// size statistics, tests candidate strings, and exports DOT/PNG diagrams.
//
//	rexc '(a|b)*c'                  compile, show stats
//	rexc -dfa '(a|b)*c' abc ab      test strings against the DFA
//	rexc -debug 'a|b'               dump tokens, AST and automata
//	rexc -dot graph.dot 'ab*'       export the NFA as Graphviz DOT
//	rexc -i                         interactive mode
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"rexc/ast"
	"rexc/compiler"
	"rexc/viz"
)

func main() {
	interactive := flag.Bool("i", false, "interactive mode")
	debug := flag.Bool("debug", false, "print tokens, AST, automata and simulation traces")
	useDFA := flag.Bool("dfa", false, "determinize and simulate on the DFA")
	dotFile := flag.String("dot", "", "write DOT to file ('-' for stdout)")
	pngFile := flag.String("png", "", "render PNG via graphviz dot")
	flag.Parse()

	if *interactive {
		repl(os.Stdin, os.Stdout)
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [-dfa] [-debug] [-dot file] [-png file] <pattern> [test string...]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	pattern, tests := args[0], args[1:]

	c, err := compiler.Compile(pattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if *debug {
		fmt.Println("tokens:")
		for _, tok := range c.Tokens {
			fmt.Printf("  %s\n", tok)
		}
		fmt.Println("ast:")
		fmt.Print(ast.Dump(c.AST))
		fmt.Println()
		fmt.Print(c.NFA)
		fmt.Println("transition table:")
		fmt.Print(viz.TransitionTable(c.NFA))
		if *useDFA {
			fmt.Println()
			fmt.Print(c.Determinize())
		}
		fmt.Println()
	}

	printStats(c, *useDFA)

	if *dotFile != "" || *pngFile != "" {
		if err := export(c, *useDFA, *dotFile, *pngFile); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
	}

	if len(tests) > 0 {
		fmt.Println()
	}
	for _, s := range tests {
		accepted := c.NFA.Simulate(s)
		if *useDFA {
			accepted = c.Determinize().Simulate(s)
		}
		verdict := "reject"
		if accepted {
			verdict = "accept"
		}
		fmt.Printf("%q -> %s\n", s, verdict)
		if *debug {
			fmt.Print(viz.Trace(c.NFA, s))
		}
	}
}

func printStats(c *compiler.Compilation, includeDFA bool) {
	report := c.Analyze(includeDFA)

	fmt.Printf("pattern %q\n", c.Pattern)
	fmt.Println("NFA:")
	fmt.Printf("  states:        %d\n", report.NFA.States)
	fmt.Printf("  transitions:   %d (%d ε)\n", report.NFA.Transitions, report.NFA.EpsilonTransitions)
	fmt.Printf("  alphabet size: %d\n", report.NFA.AlphabetSize)
	fmt.Printf("  final states:  %d\n", report.NFA.FinalStates)

	if report.DFA != nil {
		fmt.Println("DFA:")
		fmt.Printf("  states:        %d\n", report.DFA.States)
		fmt.Printf("  transitions:   %d\n", report.DFA.Transitions)
		fmt.Printf("  final states:  %d\n", report.DFA.FinalStates)
		fmt.Printf("  reduction:     %.2fx\n", report.DFA.ReductionRatio)
	}
}

func export(c *compiler.Compilation, useDFA bool, dotFile, pngFile string) error {
	var buf bytes.Buffer
	if useDFA {
		viz.WriteDFADot(&buf, c.Determinize(), c.Pattern)
	} else {
		viz.WriteNFADot(&buf, c.NFA, c.Pattern)
	}

	if pngFile != "" {
		if err := viz.RenderPNG(buf.Bytes(), pngFile); err != nil {
			return err
		}
		fmt.Printf("PNG written to %s\n", pngFile)
	}

	if dotFile == "" {
		return nil
	}
	if dotFile == "-" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(dotFile, buf.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Printf("DOT written to %s\n", dotFile)
	return nil
}

func repl(in io.Reader, out io.Writer) {
	fmt.Fprintln(out, "regex compiler, interactive mode")
	fmt.Fprintln(out, "operators: | (union), * (Kleene closure), () (grouping); 'quit' to exit")

	rdr := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "regex> ")
		if !rdr.Scan() {
			return
		}
		pattern := strings.TrimSpace(rdr.Text())
		switch pattern {
		case "quit", "exit", "q":
			return
		case "":
			continue
		}

		c, err := compiler.Compile(pattern)
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}
		fmt.Fprintf(out, "compiled: %d states, %d transitions\n", len(c.NFA.States), len(c.NFA.Transitions))

		for {
			fmt.Fprint(out, "  test (empty for new regex)> ")
			if !rdr.Scan() {
				return
			}
			input := strings.TrimSpace(rdr.Text())
			if input == "" {
				break
			}
			verdict := "reject"
			if c.NFA.Simulate(input) {
				verdict = "accept"
			}
			fmt.Fprintf(out, "  %q -> %s\n", input, verdict)
		}
	}
}
