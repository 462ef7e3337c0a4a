// Command tunnelctl runs the tunnel-network reduction against a handful of
// built-in demo networks, one per scenario the reduction's test suite also
// exercises, and prints the SAT/UNSAT verdict plus the decoded path or a
// model dump.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/satformula"
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/pkg/reduction"
)

var logger = log.New(os.Stdout, "tunnelctl: ", 0)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "demo":
		if err := runDemo(os.Args[2:]); err != nil {
			logger.Fatalf("demo: %v", err)
		}
	case "batch":
		runBatch()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: tunnelctl demo <name> [length]")
	fmt.Fprintln(os.Stderr, "       tunnelctl batch")
	fmt.Fprintln(os.Stderr, "\navailable demos:")
	for _, d := range demos {
		fmt.Fprintf(os.Stderr, "  %-18s %s\n", d.Name, d.Description)
	}
}

func runDemo(args []string) error {
	if len(args) < 1 {
		return errors.New("missing demo name")
	}
	demo, ok := findDemo(args[0])
	if !ok {
		return fmt.Errorf("unknown demo %q", args[0])
	}

	length := demo.Length
	if len(args) >= 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid length %q: %w", args[1], err)
		}
		length = n
	}

	tn := demo.Build()
	ctx := satformula.NewContext()

	formula := reduction.Reduce(ctx, tn, length)

	status, model, err := ctx.Solve(formula)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	logger.Printf("%s (length %d): %s", demo.Name, length, status)
	if status != satformula.Sat {
		return nil
	}

	path, err := reduction.DecodePath(ctx, model, tn, length)
	if err != nil {
		logger.Printf("decode failed: %v; dumping raw model instead", err)
		return reduction.PrintModel(os.Stdout, ctx, model, tn, length)
	}

	for i, step := range path {
		logger.Printf("step %d: %s --%s--> %s", i, tn.NodeName(step.Src), step.Action, tn.NodeName(step.Dst))
	}
	return nil
}

func runBatch() {
	jobs := make([]reduction.Job, 0, len(demos))
	for _, d := range demos {
		jobs = append(jobs, reduction.Job{Name: d.Name, Network: d.Build(), Length: d.Length})
	}

	results, summary := reduction.SolveBatch(context.Background(), jobs, 0)
	for _, res := range results {
		if res.Err != nil {
			logger.Printf("%s: error: %v", res.Job.Name, res.Err)
			continue
		}
		logger.Printf("%s (length %d): %s", res.Job.Name, res.Job.Length, res.Status)
		for i, step := range res.Path {
			logger.Printf("  step %d: %s --%s--> %s",
				i, res.Job.Network.NodeName(step.Src), step.Action, res.Job.Network.NodeName(step.Dst))
		}
	}

	logger.Printf("stats: %s", summary.Stats.String())
	for _, alert := range summary.Alerts {
		logger.Printf("deadlock alert: %s (task %s)", alert.Description, alert.TaskID)
	}
}
