package cmd

import (
	"errors"
	"fmt"
	"os"

	"fastcat.org/go/devtask/task"
)

// Main loads the catalog, runs the CLI, and exits the process with the
// appropriate status: a failed command's own exit status, 1 for anything
// else that went wrong, 0 on success.
func Main() {
	cat, err := task.Load(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	if err := Root(task.NewDispatcher(cat)).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		ec := 1
		var ece ExitCodeErr
		if errors.As(err, &ece) {
			ec = ece.ExitCode()
		}
		os.Exit(ec)
	}
}

type ExitCodeErr interface {
	ExitCode() int
}
