package task

import (
	"fmt"
	"strings"
)

// NotFoundError reports a task name with no entry in the catalog. No
// commands run when this is returned.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown task %q", e.Name)
}

// CommandError reports a command in a task's sequence that exited
// non-zero or failed to start. Remaining commands in the sequence were
// skipped.
type CommandError struct {
	Task   string
	Args   Command
	Status int
	// Err is the start failure, if the command never ran.
	Err error
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task %s: %s: %s",
			e.Task, strings.Join(e.Args, " "), e.Err.Error())
	}
	return fmt.Sprintf("task %s: %s: exit status %d",
		e.Task, strings.Join(e.Args, " "), e.Status)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode is the status the process should exit with: the failing
// command's own exit status, forwarded unchanged.
func (e *CommandError) ExitCode() int {
	return e.Status
}
