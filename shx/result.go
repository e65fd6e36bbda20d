package shx

import (
	"bytes"
	"io"
	"os"
)

// Result is the outcome of running a command to completion.
type Result struct {
	stdout *bytes.Buffer

	exitErr      error
	processState *os.ProcessState
}

// Err returns the error from waiting on the command, nil if it exited
// with status 0.
func (r *Result) Err() error {
	return r.exitErr
}

// ExitCode returns the command's exit status, 0 on success. It is -1 if
// the command was terminated by a signal.
func (r *Result) ExitCode() int {
	if r.processState == nil {
		return -1
	}
	return r.processState.ExitCode()
}

// Stdout returns a reader over the captured output.
//
// If capture was not enabled, this returns nil.
func (r *Result) Stdout() io.Reader {
	if r.stdout == nil {
		return nil
	}
	return bytes.NewReader(r.stdout.Bytes())
}
