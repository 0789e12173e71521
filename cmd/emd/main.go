// Command emd prints the Wasserstein-1 distance between two mass
// distributions.
//
// Usage:
//
//	emd -left 1,0,0 -right 0,0,1
//	emd -input masses.json -sparse -plan -json
//
// The input file holds {"left": [...], "right": [...]}. Exit status is 0 on
// success, 1 on any error and 2 when the solver reports a fatal invariant
// violation.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bytedance/sonic"

	"github.com/katalvlaran/emd/wasserstein"
)

const (
	exitOK    = 0
	exitError = 1
	exitFatal = 2
)

type options struct {
	left, right string
	input       string
	sparse      bool
	plan        bool
	json        bool
	verbose     bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("emd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.left, "left", "", "Comma separated masses of the left distribution")
	fs.StringVar(&o.right, "right", "", "Comma separated masses of the right distribution")
	fs.StringVar(&o.input, "input", "", "Path to a JSON file with left and right arrays")
	fs.BoolVar(&o.sparse, "sparse", false, "Only build vertices for non-zero masses")
	fs.BoolVar(&o.plan, "plan", false, "Print the transport plan")
	fs.BoolVar(&o.json, "json", false, "Print the result as JSON")
	fs.BoolVar(&o.verbose, "v", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("%w: unexpected arguments %v", errInput, fs.Args())
	}
	return o, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run executes one invocation and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitError
	}
	logger := newLogger(stderr, o.verbose)

	doc, err := loadInput(o.input, o.left, o.right)
	if err != nil {
		logger.Error("emd: input", "err", err)
		return exitError
	}

	method, planFn := "dense", wasserstein.DensePlan
	if o.sparse {
		method, planFn = "sparse", wasserstein.SparsePlan
	}
	plan, err := planFn(doc.Left, doc.Right, wasserstein.WithLogger(logger))
	if err != nil {
		if errors.Is(err, wasserstein.ErrFatalInvariant) {
			logger.Error("emd: fatal", "err", err)
			return exitFatal
		}
		logger.Error("emd: solve", "method", method, "err", err)
		return exitError
	}
	logger.Info("emd: solved", "method", method, "left", len(doc.Left), "right", len(doc.Right), "distance", plan.Cost)

	res := result{Method: method, Distance: plan.Cost}
	if o.plan {
		res.Moves = plan.Moves
	}
	if err := write(stdout, res, o.json); err != nil {
		logger.Error("emd: output", "err", err)
		return exitError
	}
	return exitOK
}

func write(w io.Writer, res result, asJSON bool) error {
	if asJSON {
		data, err := sonic.Marshal(res)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	if _, err := fmt.Fprintf(w, "%.12g\n", res.Distance); err != nil {
		return err
	}
	for _, m := range res.Moves {
		if _, err := fmt.Fprintf(w, "%d -> %d %.12g\n", m.From, m.To, m.Mass); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
