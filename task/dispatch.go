package task

import (
	"context"

	"fastcat.org/go/devtask/shx"
)

// Runner executes a single command to completion and reports its exit
// status. The error return is for failures to run the command at all, not
// for a non-zero exit.
type Runner interface {
	Run(ctx context.Context, argv Command) (int, error)
}

// Dispatcher resolves task names against a catalog and runs their command
// sequences one at a time, fail-fast.
type Dispatcher struct {
	Catalog Catalog
	Runner  Runner
}

func NewDispatcher(cat Catalog) *Dispatcher {
	return &Dispatcher{
		Catalog: cat,
		Runner:  shxRunner{},
	}
}

// Run executes the named task's commands in declared order, blocking on
// each before starting the next. The first command that exits non-zero
// aborts the rest; already-completed commands are not undone. Returns a
// *NotFoundError for an unknown name, a *CommandError for a failed
// command, nil when every command exited 0.
func (d *Dispatcher) Run(ctx context.Context, name string) error {
	t, ok := d.Catalog.Lookup(name)
	if !ok {
		return &NotFoundError{Name: name}
	}
	for _, argv := range t.Commands {
		status, err := d.Runner.Run(ctx, argv)
		if err != nil {
			return &CommandError{Task: name, Args: argv, Status: 1, Err: err}
		}
		if status != 0 {
			if status < 0 {
				// killed by a signal, there is no child status to forward
				status = 1
			}
			return &CommandError{Task: name, Args: argv, Status: status}
		}
	}
	return nil
}

// shxRunner runs commands as child processes with inherited stdio, cwd,
// and environment.
type shxRunner struct{}

func (shxRunner) Run(ctx context.Context, argv Command) (int, error) {
	res, err := shx.Run(ctx, argv, shx.PassStdio())
	if err != nil {
		return 0, err
	}
	return res.ExitCode(), nil
}
