// Package harness runs the canned acceptance cases for the scanner. Each case
// feeds one input through a fresh scan and checks the two output sequences;
// the harness itself contains no scanning logic. The scanner treats no input
// as fatal, so "failure" here is purely the harness's judgment.
package harness

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/Bayzid03/IBTAC-Lexical-Analyzer/pkg/lexer"
)

// Case is one acceptance case: an input and a predicate over its scan result.
type Case struct {
	Name  string
	Input string
	Check func(*lexer.ScanResult) error
}

// Result is the outcome of one case.
type Result struct {
	Name   string
	Input  string
	Passed bool
	Detail string
}

// RunAll executes every case. Scans are pure and share no state, so cases run
// concurrently; results keep the declared case order.
func RunAll(ctx context.Context, cases []Case) ([]Result, error) {
	results := make([]Result, len(cases))
	g, ctx := errgroup.WithContext(ctx)

	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := Result{Name: c.Name, Input: c.Input, Passed: true}
			if err := c.Check(lexer.ScanString(c.Input)); err != nil {
				res.Passed = false
				res.Detail = err.Error()
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// WriteReport renders the results and returns how many cases failed.
func WriteReport(w io.Writer, results []Result) int {
	failed := 0
	for _, r := range results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(w, "[%s] %s\n", status, r.Name)
		fmt.Fprintf(w, "       input: %q\n", r.Input)
		if r.Detail != "" {
			fmt.Fprintf(w, "       %s\n", r.Detail)
		}
	}
	fmt.Fprintf(w, "%d/%d cases passed\n", len(results)-failed, len(results))
	return failed
}
