package config

import (
	"context"
	"fmt"
	"io"

	"github.com/filtergram/filtergram"
	"go.uber.org/zap"
)

// Runner executes a parsed command line against the filter engine
type Runner struct {
	App     *filtergram.Filtergram
	Args    []string
	Version bool
	Logger  *zap.Logger
	Stdout  io.Writer
	Stderr  io.Writer
}

const usageText = `usage:
  filtergram [flags] <filter> <input> [output]
  filtergram [flags] <filter> <input>...
  filtergram list
`

// Run dispatches the command, returning the process exit code
func (r *Runner) Run(ctx context.Context) int {
	if r.Version {
		fmt.Fprintln(r.Stdout, filtergram.Version)
		return filtergram.ExitOK
	}
	if len(r.Args) == 0 {
		fmt.Fprint(r.Stderr, usageText)
		return filtergram.ExitUsage
	}
	if r.Args[0] == "list" {
		for _, name := range r.App.Names() {
			fmt.Fprintln(r.Stdout, name)
		}
		return filtergram.ExitOK
	}
	filter := r.Args[0]
	paths := r.Args[1:]
	if len(paths) == 0 {
		fmt.Fprintln(r.Stderr, "filtergram: missing input file")
		fmt.Fprint(r.Stderr, usageText)
		return filtergram.ExitUsage
	}
	var jobs []filtergram.Job
	if len(paths) == 2 {
		// single input with explicit output path
		jobs = []filtergram.Job{{Filter: filter, Input: paths[0], Output: paths[1]}}
	} else {
		for _, path := range paths {
			jobs = append(jobs, filtergram.Job{Filter: filter, Input: path})
		}
	}
	if err := r.App.Batch(ctx, jobs); err != nil {
		e := filtergram.WrapError(err)
		r.Logger.Debug("run", zap.Error(e))
		fmt.Fprintln(r.Stderr, e.Error())
		return e.Code
	}
	return filtergram.ExitOK
}
