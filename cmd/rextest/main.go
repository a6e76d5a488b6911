// Command rextest runs a batch test script against the regex compiler.
// Every pattern block compiles independently; the exit status is non-zero
// when any block fails to compile or any case disagrees.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"rexc/internal/script"
)

func main() {
	useDFA := flag.Bool("dfa", false, "simulate on the DFA instead of the NFA")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: %s [-dfa] <script file>", os.Args[0])
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	suite, err := script.Parse(string(data))
	if err != nil {
		log.Fatal(err)
	}

	failed := 0
	for _, res := range suite.Run(*useDFA) {
		switch {
		case res.Err != nil:
			failed++
			fmt.Printf("FAIL %q: %v\n", res.Pattern, res.Err)
		case len(res.Failures) > 0:
			failed++
			fmt.Printf("FAIL %q: %d/%d cases\n", res.Pattern, len(res.Failures), res.Cases)
			for _, f := range res.Failures {
				fmt.Printf("  %q: want %s, got %s\n", f.Input, verdict(f.Want), verdict(f.Got))
			}
		default:
			fmt.Printf("ok   %q (%d cases)\n", res.Pattern, res.Cases)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func verdict(accepted bool) string {
	if accepted {
		return "accept"
	}
	return "reject"
}
